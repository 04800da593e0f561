package repository

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id string) (*entity.Goal, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Goal, error)
	Update(ctx context.Context, id string, updates map[string]any) error
	MarkRewarded(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	CreateMilestone(ctx context.Context, milestone *entity.Milestone) error
	GetMilestoneByID(ctx context.Context, id string) (*entity.Milestone, error)
	GetMilestonesByGoalID(ctx context.Context, goalID string) ([]entity.Milestone, error)
	UpdateMilestone(ctx context.Context, id string, updates map[string]any) error
	DeleteMilestone(ctx context.Context, id string) error
	DeleteMilestonesByGoalID(ctx context.Context, goalID string) error
}

type goalRepository struct{}

func NewGoalRepository() *goalRepository {
	return &goalRepository{}
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return xcontext.DB(ctx).Create(goal).Error
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*entity.Goal, error) {
	var result entity.Goal
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *goalRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	var result []entity.Goal
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *goalRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Goal{}).
		Where("id=?", id).
		Updates(updates)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// MarkRewarded flips reward_issued exactly once. It reports false when the
// reward was already issued, so the caller awards XP at most once.
func (r *goalRepository) MarkRewarded(ctx context.Context, id string) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Goal{}).
		Where("id=? AND reward_issued=?", id, false).
		Update("reward_issued", true)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Goal{}, "id=?", id).Error
}

func (r *goalRepository) CreateMilestone(ctx context.Context, milestone *entity.Milestone) error {
	return xcontext.DB(ctx).Create(milestone).Error
}

func (r *goalRepository) GetMilestoneByID(ctx context.Context, id string) (*entity.Milestone, error) {
	var result entity.Milestone
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *goalRepository) GetMilestonesByGoalID(ctx context.Context, goalID string) ([]entity.Milestone, error) {
	var result []entity.Milestone
	err := xcontext.DB(ctx).
		Where("goal_id=?", goalID).
		Order("order_index ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *goalRepository) UpdateMilestone(ctx context.Context, id string, updates map[string]any) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Milestone{}).
		Where("id=?", id).
		Updates(updates)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *goalRepository) DeleteMilestone(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Milestone{}, "id=?", id).Error
}

func (r *goalRepository) DeleteMilestonesByGoalID(ctx context.Context, goalID string) error {
	return xcontext.DB(ctx).Delete(&entity.Milestone{}, "goal_id=?", goalID).Error
}
