package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

type StreakRepository interface {
	Create(ctx context.Context, streak *entity.Streak) error
	Get(ctx context.Context, userID, questID string) (*entity.Streak, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Streak, error)
	Update(ctx context.Context, id string, current, longest int, lastCompleted sql.NullTime) error
	ResetBrokenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type streakRepository struct{}

func NewStreakRepository() *streakRepository {
	return &streakRepository{}
}

func (r *streakRepository) Create(ctx context.Context, streak *entity.Streak) error {
	return xcontext.DB(ctx).Create(streak).Error
}

func (r *streakRepository) Get(ctx context.Context, userID, questID string) (*entity.Streak, error) {
	var result entity.Streak
	err := xcontext.DB(ctx).
		Where("user_id=? AND quest_id=?", userID, questID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *streakRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Streak, error) {
	var result []entity.Streak
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("current_streak DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *streakRepository) Update(
	ctx context.Context, id string, current, longest int, lastCompleted sql.NullTime,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Streak{}).
		Where("id=?", id).
		Updates(map[string]any{
			"current_streak":      current,
			"longest_streak":      longest,
			"last_completed_date": lastCompleted,
		}).Error
}

// ResetBrokenBefore zeroes the current streak of every row whose last
// completion is older than the cutoff date. Longest streaks are kept.
func (r *streakRepository) ResetBrokenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Streak{}).
		Where("current_streak > 0 AND last_completed_date < ?", cutoff).
		Update("current_streak", 0)

	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}
