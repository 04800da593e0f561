package repository

import (
	"context"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

type XPDecayHistoryRepository interface {
	Create(ctx context.Context, record *entity.XPDecayHistory) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]entity.XPDecayHistory, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.XPDecayHistory, error)
}

type xpDecayHistoryRepository struct{}

func NewXPDecayHistoryRepository() *xpDecayHistoryRepository {
	return &xpDecayHistoryRepository{}
}

func (r *xpDecayHistoryRepository) Create(ctx context.Context, record *entity.XPDecayHistory) error {
	return xcontext.DB(ctx).Create(record).Error
}

func (r *xpDecayHistoryRepository) GetByUserAndDate(
	ctx context.Context, userID string, date time.Time,
) (*entity.XPDecayHistory, error) {
	var result entity.XPDecayHistory
	err := xcontext.DB(ctx).
		Where("user_id=? AND decay_date=?", userID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *xpDecayHistoryRepository) GetByUserID(
	ctx context.Context, userID string, limit int,
) ([]entity.XPDecayHistory, error) {
	var result []entity.XPDecayHistory
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("decay_date DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
