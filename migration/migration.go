package migration

import (
	"context"
	"errors"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

// latestVersion must be bumped whenever a new numbered migrator is added.
const latestVersion = 2

var migrators = map[int]func(context.Context) error{
	1: migrate0001,
	2: migrate0002,
}

// Migrate brings the database schema to the latest version. A fresh database
// is created directly at the latest version, an existing one is upgraded one
// numbered migrator at a time.
func Migrate(ctx context.Context) error {
	db := xcontext.DB(ctx)

	if !db.Migrator().HasTable(&entity.Migration{}) {
		if err := migrate0000(ctx); err != nil {
			return err
		}

		return recordVersion(ctx, latestVersion)
	}

	current, err := currentVersion(ctx)
	if err != nil {
		return err
	}

	for version := current + 1; version <= latestVersion; version++ {
		xcontext.Logger(ctx).Infof("Migrating database to version %d", version)
		if err := migrators[version](ctx); err != nil {
			return err
		}

		if err := recordVersion(ctx, version); err != nil {
			return err
		}
	}

	return nil
}

func currentVersion(ctx context.Context) (int, error) {
	var record entity.Migration
	err := xcontext.DB(ctx).Order("version DESC").Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, err
	}

	return record.Version, nil
}

func recordVersion(ctx context.Context, version int) error {
	return xcontext.DB(ctx).Create(&entity.Migration{
		Version:   version,
		AppliedAt: time.Now(),
	}).Error
}
