package entity

import "database/sql"

type Goal struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Title       string
	Description []byte `gorm:"type:longtext"`
	Category    string
	TargetDate  sql.NullTime `gorm:"type:date"`

	IsCompleted bool
	// RewardIssued guards the one-shot XP award independently of
	// IsCompleted, so milestone flapping can never re-award.
	RewardIssued bool
	XPReward     int `gorm:"column:xp_reward"`
}

type Milestone struct {
	Base

	GoalID string `gorm:"index"`
	Goal   Goal   `gorm:"foreignKey:GoalID"`

	Title       string
	OrderIndex  int `gorm:"column:order_index"`
	IsCompleted bool
}
