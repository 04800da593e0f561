package migration

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

// migrate0002 creates the weekly challenge tables.
func migrate0002(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.WeeklyChallenge{},
		&entity.WeeklyChallengeCompletion{},
	)
}
