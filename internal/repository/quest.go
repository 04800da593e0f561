package repository

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestFilter struct {
	Categories []string
	ActiveOnly bool
	CoreOnly   bool
}

type QuestRepository interface {
	Create(ctx context.Context, quest *entity.Quest) error
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Quest, error)
	GetList(ctx context.Context, filter QuestFilter) ([]entity.Quest, error)
	Update(ctx context.Context, quest *entity.Quest) error
	Deactivate(ctx context.Context, id string) error
}

type questRepository struct{}

func NewQuestRepository() *questRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, quest *entity.Quest) error {
	return xcontext.DB(ctx).Create(quest).Error
}

func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	var result entity.Quest
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *questRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Quest, error) {
	var result []entity.Quest
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) GetList(ctx context.Context, filter QuestFilter) ([]entity.Quest, error) {
	tx := xcontext.DB(ctx).Model(&entity.Quest{})

	if len(filter.Categories) > 0 {
		tx = tx.Where("category IN (?)", filter.Categories)
	}

	if filter.ActiveOnly {
		tx = tx.Where("is_active=?", true)
	}

	if filter.CoreOnly {
		tx = tx.Where("is_core=?", true)
	}

	var result []entity.Quest
	if err := tx.Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) Update(ctx context.Context, quest *entity.Quest) error {
	return xcontext.DB(ctx).
		Model(&entity.Quest{}).
		Where("id=?", quest.ID).
		Updates(quest).Error
}

func (r *questRepository) Deactivate(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Quest{}).
		Where("id=?", id).
		Update("is_active", false)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
