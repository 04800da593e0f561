package entity

import "github.com/kunal12203/LifeGoal-Game/pkg/enum"

type QuestDifficulty string

var (
	QuestEasy   = enum.New(QuestDifficulty("easy"))
	QuestMedium = enum.New(QuestDifficulty("medium"))
	QuestHard   = enum.New(QuestDifficulty("hard"))
)

type Quest struct {
	Base

	Title       string
	Description []byte `gorm:"type:longtext"`
	Category    string `gorm:"index:idx_quest_category_active"`
	Difficulty  QuestDifficulty
	BaseXP      int `gorm:"column:base_xp"`

	// Core quests drive streaks and weekly-challenge eligibility.
	IsCore   bool
	IsActive bool `gorm:"index:idx_quest_category_active"`
}
