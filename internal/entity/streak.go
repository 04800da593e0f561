package entity

import "database/sql"

// Streak counts consecutive-day completions per (user, quest). Only core
// quests maintain streaks.
type Streak struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_streak_user_quest"`
	User   User   `gorm:"foreignKey:UserID"`

	QuestID string `gorm:"uniqueIndex:idx_streak_user_quest"`
	Quest   Quest  `gorm:"foreignKey:QuestID"`

	CurrentStreak     int
	LongestStreak     int
	LastCompletedDate sql.NullTime `gorm:"type:date"`
}
