package entity

import "time"

type User struct {
	Base

	Username       string `gorm:"unique"`
	Email          string `gorm:"unique"`
	HashedPassword string

	TotalXP      int `gorm:"column:total_xp"`
	CurrentLevel int `gorm:"default:1"`

	// GoalCategories filters which quests appear in a daily run. An empty
	// list means all active quests.
	GoalCategories         Array[string]
	HasCompletedOnboarding bool

	// LastActivityDate drives XP decay. It is reset by quest completion
	// and run locking.
	LastActivityDate time.Time `gorm:"type:date"`
}
