package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

type DailyRunRepository interface {
	Create(ctx context.Context, run *entity.DailyRun) error
	GetByID(ctx context.Context, id string) (*entity.DailyRun, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.DailyRun, error)
	GetLockedByUserAndDates(ctx context.Context, userID string, dates []time.Time) ([]entity.DailyRun, error)
	SumLockedXP(ctx context.Context, userID string) (int, error)
	UpdateTotals(ctx context.Context, id string, totalXP int, isPerfect bool) error
	Lock(ctx context.Context, id string, completedAt time.Time) error
	CreateCompletion(ctx context.Context, completion *entity.DailyQuestCompletion) error
	GetCompletion(ctx context.Context, id string) (*entity.DailyQuestCompletion, error)
	GetCompletionsByRunID(ctx context.Context, runID string) ([]entity.DailyQuestCompletion, error)
	SetCompleted(ctx context.Context, completionID string, xpEarned int, completedAt sql.NullTime) error
	SetUncompleted(ctx context.Context, completionID string) error
}

type dailyRunRepository struct{}

func NewDailyRunRepository() *dailyRunRepository {
	return &dailyRunRepository{}
}

func (r *dailyRunRepository) Create(ctx context.Context, run *entity.DailyRun) error {
	return xcontext.DB(ctx).Create(run).Error
}

func (r *dailyRunRepository) GetByID(ctx context.Context, id string) (*entity.DailyRun, error) {
	var result entity.DailyRun
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dailyRunRepository) GetByUserAndDate(
	ctx context.Context, userID string, date time.Time,
) (*entity.DailyRun, error) {
	var result entity.DailyRun
	err := xcontext.DB(ctx).
		Where("user_id=? AND date=?", userID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dailyRunRepository) GetLockedByUserAndDates(
	ctx context.Context, userID string, dates []time.Time,
) ([]entity.DailyRun, error) {
	var result []entity.DailyRun
	err := xcontext.DB(ctx).
		Where("user_id=? AND is_locked=? AND date IN (?)", userID, true, dates).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dailyRunRepository) SumLockedXP(ctx context.Context, userID string) (int, error) {
	var result sql.NullInt64
	err := xcontext.DB(ctx).
		Model(&entity.DailyRun{}).
		Select("SUM(total_xp)").
		Where("user_id=? AND is_locked=?", userID, true).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	return int(result.Int64), nil
}

func (r *dailyRunRepository) UpdateTotals(ctx context.Context, id string, totalXP int, isPerfect bool) error {
	tx := xcontext.DB(ctx).
		Model(&entity.DailyRun{}).
		Where("id=? AND is_locked=?", id, false).
		Updates(map[string]any{
			"total_xp":   totalXP,
			"is_perfect": isPerfect,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Lock flips is_locked exactly once. Locking an already locked run affects
// no rows and reports not found.
func (r *dailyRunRepository) Lock(ctx context.Context, id string, completedAt time.Time) error {
	tx := xcontext.DB(ctx).
		Model(&entity.DailyRun{}).
		Where("id=? AND is_locked=?", id, false).
		Updates(map[string]any{
			"is_locked":    true,
			"completed_at": completedAt,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *dailyRunRepository) CreateCompletion(
	ctx context.Context, completion *entity.DailyQuestCompletion,
) error {
	return xcontext.DB(ctx).Create(completion).Error
}

func (r *dailyRunRepository) GetCompletion(
	ctx context.Context, id string,
) (*entity.DailyQuestCompletion, error) {
	var result entity.DailyQuestCompletion
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	if err := xcontext.DB(ctx).Take(&result.Quest, "id=?", result.QuestID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dailyRunRepository) GetCompletionsByRunID(
	ctx context.Context, runID string,
) ([]entity.DailyQuestCompletion, error) {
	var result []entity.DailyQuestCompletion
	err := xcontext.DB(ctx).
		Where("daily_run_id=?", runID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dailyRunRepository) SetCompleted(
	ctx context.Context, completionID string, xpEarned int, completedAt sql.NullTime,
) error {
	return xcontext.DB(ctx).
		Model(&entity.DailyQuestCompletion{}).
		Where("id=?", completionID).
		Updates(map[string]any{
			"completed":    true,
			"xp_earned":    xpEarned,
			"completed_at": completedAt,
		}).Error
}

func (r *dailyRunRepository) SetUncompleted(ctx context.Context, completionID string) error {
	return xcontext.DB(ctx).
		Model(&entity.DailyQuestCompletion{}).
		Where("id=?", completionID).
		Updates(map[string]any{
			"completed":    false,
			"xp_earned":    0,
			"completed_at": sql.NullTime{},
		}).Error
}
