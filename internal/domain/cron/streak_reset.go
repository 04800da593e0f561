package cron

import (
	"context"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

// StreakResetCronJob zeroes the current counter of streaks whose last
// completion is two or more days old. Longest streak records are kept.
type StreakResetCronJob struct {
	streakRepo repository.StreakRepository
	clock      dateutil.Clock
}

func NewStreakResetCronJob(streakRepo repository.StreakRepository, clock dateutil.Clock) *StreakResetCronJob {
	return &StreakResetCronJob{streakRepo: streakRepo, clock: clock}
}

func (job *StreakResetCronJob) Do(ctx context.Context) {
	// A streak last completed yesterday is still alive until the end of
	// today, so the cutoff is yesterday's date.
	cutoff := dateutil.Date(job.clock.Now()).AddDate(0, 0, -1)

	reset, err := job.streakRepo.ResetBrokenBefore(ctx, cutoff)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reset broken streaks: %v", err)
		return
	}

	xcontext.Logger(ctx).Infof("Reset %d broken streaks", reset)
}

func (job *StreakResetCronJob) RunNow() bool {
	return true
}

func (job *StreakResetCronJob) Next() time.Time {
	return dateutil.NextDay(time.Now())
}
