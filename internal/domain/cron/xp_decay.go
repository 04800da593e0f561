package cron

import (
	"context"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/domain"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

// XPDecayCronJob applies the daily XP decay to every inactive user just
// after midnight.
type XPDecayCronJob struct {
	decayDomain domain.DecayDomain
}

func NewXPDecayCronJob(decayDomain domain.DecayDomain) *XPDecayCronJob {
	return &XPDecayCronJob{decayDomain: decayDomain}
}

func (job *XPDecayCronJob) Do(ctx context.Context) {
	stats, err := job.decayDomain.ProcessAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot process xp decay: %v", err)
		return
	}

	xcontext.Logger(ctx).Infof(
		"XP decay processed %d users, decayed %d, lost %d xp, dropped %d levels",
		stats.TotalUsers, stats.UsersDecayed, stats.TotalXPLost, stats.LevelsDropped)
}

func (job *XPDecayCronJob) RunNow() bool {
	return true
}

func (job *XPDecayCronJob) Next() time.Time {
	return dateutil.NextDay(time.Now())
}
