package domain

import (
	"github.com/kunal12203/LifeGoal-Game/internal/domain/gamelogic"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
)

func levelInfo(curve gamelogic.LevelCurve, totalXP int) model.LevelInfo {
	level := curve.LevelForXP(totalXP)
	return model.LevelInfo{
		Level:              level,
		TotalXP:            totalXP,
		CurrentLevelXP:     curve.XPForLevel(level),
		NextLevelXP:        curve.XPForLevel(level + 1),
		ProgressPercentage: curve.ProgressPercentage(totalXP),
	}
}
