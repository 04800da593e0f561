package entity

import "time"

// Migration tracks the schema version the database is currently at.
type Migration struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt time.Time
}
