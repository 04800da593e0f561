package gamelogic

import (
	stdmath "math"

	"github.com/kunal12203/LifeGoal-Game/config"
	"github.com/pkg/math"
)

// LevelCurve converts between lifetime XP and levels using a power curve.
// With the default base of 100 and exponent of 0.5 the thresholds are the
// perfect squares times 100: 0, 100, 400, 900, ...
//
// The curve is pure and deterministic; it never rejects an input, it clamps.
type LevelCurve struct {
	xpBase   int
	exponent float64
}

func NewLevelCurve(cfg config.GameConfigs) LevelCurve {
	return LevelCurve{xpBase: cfg.XPBase, exponent: cfg.LevelExponent}
}

func (c LevelCurve) LevelForXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}

	level := int(stdmath.Floor(stdmath.Pow(float64(totalXP)/float64(c.xpBase), c.exponent))) + 1
	return math.MaxInt(1, level)
}

// XPForLevel is the exact algebraic inverse of LevelForXP's floor boundary:
// LevelForXP(XPForLevel(l)) == l for every l >= 1.
func (c LevelCurve) XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}

	return int(stdmath.Pow(float64(level-1), 1/c.exponent) * float64(c.xpBase))
}

// ProgressPercentage reports how far into the current level totalXP sits,
// as a value in [0, 100]. A degenerate zero-width level reports 100.
func (c LevelCurve) ProgressPercentage(totalXP int) float64 {
	if totalXP < 0 {
		totalXP = 0
	}

	level := c.LevelForXP(totalXP)
	lower := c.XPForLevel(level)
	upper := c.XPForLevel(level + 1)

	span := upper - lower
	if span == 0 {
		return 100.0
	}

	progress := float64(totalXP-lower) / float64(span) * 100
	return stdmath.Round(progress*100) / 100
}
