package migration

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

// migrate0001 adds the one-shot reward flag to goals. Goals completed before
// this column existed already received their reward, so they are flagged.
func migrate0001(ctx context.Context) error {
	db := xcontext.DB(ctx)

	if err := db.Migrator().AddColumn(&entity.Goal{}, "reward_issued"); err != nil {
		return err
	}

	return db.Model(&entity.Goal{}).
		Where("is_completed=?", true).
		Update("reward_issued", true).Error
}
