package entity

import "time"

// XPDecayHistory is an append-only audit ledger. Rows are never updated or
// deleted.
type XPDecayHistory struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	DecayDate    time.Time `gorm:"type:date"`
	DaysInactive int

	XPBefore    int `gorm:"column:xp_before"`
	XPLost      int `gorm:"column:xp_lost"`
	XPAfter     int `gorm:"column:xp_after"`
	LevelBefore int
	LevelAfter  int
}
