package entity

import (
	"database/sql"
	"time"
)

// DailyRun is the per-day container of a user's quest attempts. There is at
// most one per (user, date). Once locked it is immutable.
type DailyRun struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_daily_run_user_date"`
	User   User   `gorm:"foreignKey:UserID"`

	Date time.Time `gorm:"type:date;uniqueIndex:idx_daily_run_user_date;index"`

	TotalXP     int  `gorm:"column:total_xp"`
	IsPerfect   bool
	IsLocked    bool
	CompletedAt sql.NullTime
}
