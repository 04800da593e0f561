package migration

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
)

// migrate0000 creates a fresh database with the latest schema.
func migrate0000(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
