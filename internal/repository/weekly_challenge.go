package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

type WeeklyChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.WeeklyChallenge) error
	GetByID(ctx context.Context, id string) (*entity.WeeklyChallenge, error)
	GetByWeekStart(ctx context.Context, weekStart time.Time) (*entity.WeeklyChallenge, error)
	CreateCompletion(ctx context.Context, completion *entity.WeeklyChallengeCompletion) error
	GetCompletion(ctx context.Context, userID, challengeID string) (*entity.WeeklyChallengeCompletion, error)
	Unlock(ctx context.Context, completionID string, unlockedAt time.Time) error
	Complete(ctx context.Context, completionID string, xpEarned int, completedAt time.Time) error
	GetCompletedByUserID(ctx context.Context, userID string, limit int) ([]entity.WeeklyChallengeCompletion, error)
}

type weeklyChallengeRepository struct{}

func NewWeeklyChallengeRepository() *weeklyChallengeRepository {
	return &weeklyChallengeRepository{}
}

func (r *weeklyChallengeRepository) Create(ctx context.Context, challenge *entity.WeeklyChallenge) error {
	return xcontext.DB(ctx).Create(challenge).Error
}

func (r *weeklyChallengeRepository) GetByID(ctx context.Context, id string) (*entity.WeeklyChallenge, error) {
	var result entity.WeeklyChallenge
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyChallengeRepository) GetByWeekStart(
	ctx context.Context, weekStart time.Time,
) (*entity.WeeklyChallenge, error) {
	var result entity.WeeklyChallenge
	err := xcontext.DB(ctx).
		Where("week_start_date=?", weekStart).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyChallengeRepository) CreateCompletion(
	ctx context.Context, completion *entity.WeeklyChallengeCompletion,
) error {
	return xcontext.DB(ctx).Create(completion).Error
}

func (r *weeklyChallengeRepository) GetCompletion(
	ctx context.Context, userID, challengeID string,
) (*entity.WeeklyChallengeCompletion, error) {
	var result entity.WeeklyChallengeCompletion
	err := xcontext.DB(ctx).
		Where("user_id=? AND challenge_id=?", userID, challengeID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Unlock is one-way. Unlocking an already unlocked completion is a no-op.
func (r *weeklyChallengeRepository) Unlock(
	ctx context.Context, completionID string, unlockedAt time.Time,
) error {
	return xcontext.DB(ctx).
		Model(&entity.WeeklyChallengeCompletion{}).
		Where("id=? AND is_unlocked=?", completionID, false).
		Updates(map[string]any{
			"is_unlocked": true,
			"unlocked_at": sql.NullTime{Time: unlockedAt, Valid: true},
		}).Error
}

// Complete awards at most once. A second call affects no rows and reports
// not found so the caller can refuse the double claim.
func (r *weeklyChallengeRepository) Complete(
	ctx context.Context, completionID string, xpEarned int, completedAt time.Time,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.WeeklyChallengeCompletion{}).
		Where("id=? AND is_unlocked=? AND is_completed=?", completionID, true, false).
		Updates(map[string]any{
			"is_completed": true,
			"xp_earned":    xpEarned,
			"completed_at": sql.NullTime{Time: completedAt, Valid: true},
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *weeklyChallengeRepository) GetCompletedByUserID(
	ctx context.Context, userID string, limit int,
) ([]entity.WeeklyChallengeCompletion, error) {
	var result []entity.WeeklyChallengeCompletion
	err := xcontext.DB(ctx).
		Where("user_id=? AND is_completed=?", userID, true).
		Order("completed_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	for i := range result {
		err := xcontext.DB(ctx).
			Take(&result[i].Challenge, "id=?", result[i].ChallengeID).Error
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
