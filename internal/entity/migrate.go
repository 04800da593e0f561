package entity

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Quest{},
		&DailyRun{},
		&DailyQuestCompletion{},
		&Streak{},
		&Goal{},
		&Milestone{},
		&XPDecayHistory{},
		&WeeklyChallenge{},
		&WeeklyChallengeCompletion{},
		&Migration{},
	)
}
