package entity

import "database/sql"

type DailyQuestCompletion struct {
	Base

	DailyRunID string   `gorm:"uniqueIndex:idx_completion_run_quest"`
	DailyRun   DailyRun `gorm:"foreignKey:DailyRunID"`

	QuestID string `gorm:"uniqueIndex:idx_completion_run_quest"`
	Quest   Quest  `gorm:"foreignKey:QuestID"`

	Completed bool
	// XPEarned is either zero or the quest's base XP, no partial credit.
	XPEarned    int `gorm:"column:xp_earned"`
	CompletedAt sql.NullTime
}
