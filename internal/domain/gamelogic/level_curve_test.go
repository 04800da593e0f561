package gamelogic

import (
	"testing"

	"github.com/kunal12203/LifeGoal-Game/config"
	"github.com/stretchr/testify/require"
)

func defaultCurve() LevelCurve {
	return NewLevelCurve(config.DefaultGameConfigs())
}

func TestLevelForXP(t *testing.T) {
	curve := defaultCurve()

	tests := []struct {
		xp    int
		level int
	}{
		{xp: 0, level: 1},
		{xp: -50, level: 1},
		{xp: 99, level: 1},
		{xp: 100, level: 2},
		{xp: 399, level: 2},
		{xp: 400, level: 3},
		{xp: 900, level: 4},
		{xp: 10000, level: 11},
	}

	for _, tt := range tests {
		require.Equal(t, tt.level, curve.LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestXPForLevel(t *testing.T) {
	curve := defaultCurve()

	require.Equal(t, 0, curve.XPForLevel(0))
	require.Equal(t, 0, curve.XPForLevel(1))
	require.Equal(t, 100, curve.XPForLevel(2))
	require.Equal(t, 400, curve.XPForLevel(3))
	require.Equal(t, 900, curve.XPForLevel(4))
}

func TestCurveRoundTrip(t *testing.T) {
	curve := defaultCurve()

	// The inverse must agree with the forward curve exactly at every level
	// boundary.
	for level := 1; level <= 100; level++ {
		require.Equal(t, level, curve.LevelForXP(curve.XPForLevel(level)), "level=%d", level)
	}

	for _, xp := range []int{0, 1, 99, 100, 101, 649, 2500, 123456} {
		level := curve.LevelForXP(xp)
		require.Equal(t, level, curve.LevelForXP(curve.XPForLevel(level)), "xp=%d", xp)
	}
}

func TestProgressPercentage(t *testing.T) {
	curve := defaultCurve()

	require.Equal(t, 0.0, curve.ProgressPercentage(0))
	require.Equal(t, 0.0, curve.ProgressPercentage(100))
	require.Equal(t, 50.0, curve.ProgressPercentage(250))
	require.Equal(t, 0.0, curve.ProgressPercentage(-10))

	for _, xp := range []int{0, 1, 50, 99, 100, 399, 400, 12345} {
		p := curve.ProgressPercentage(xp)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 100.0)
	}
}
