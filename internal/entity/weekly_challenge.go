package entity

import (
	"database/sql"
	"time"
)

// WeeklyChallenge is keyed by the Monday of its ISO week; there is exactly
// one per week.
type WeeklyChallenge struct {
	Base

	WeekStartDate time.Time `gorm:"type:date;unique"`
	WeekEndDate   time.Time `gorm:"type:date"`

	Title       string
	Description []byte `gorm:"type:longtext"`
	XPReward    int    `gorm:"column:xp_reward"`
}

type WeeklyChallengeCompletion struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_challenge_completion_user"`
	User   User   `gorm:"foreignKey:UserID"`

	ChallengeID string          `gorm:"uniqueIndex:idx_challenge_completion_user"`
	Challenge   WeeklyChallenge `gorm:"foreignKey:ChallengeID"`

	IsUnlocked bool
	UnlockedAt sql.NullTime

	IsCompleted bool
	CompletedAt sql.NullTime
	XPEarned    int `gorm:"column:xp_earned"`
}
