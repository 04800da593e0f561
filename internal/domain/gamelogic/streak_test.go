package gamelogic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpdateStreak(t *testing.T) {
	day0 := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return day0.AddDate(0, 0, n) }

	tests := []struct {
		name          string
		current       int
		longest       int
		lastCompleted *time.Time
		completion    time.Time
		wantCurrent   int
		wantLongest   int
	}{
		{
			name:        "first ever completion",
			current:     0,
			longest:     0,
			completion:  day(0),
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:          "consecutive day extends streak and record",
			current:       5,
			longest:       5,
			lastCompleted: ptr(day(0)),
			completion:    day(1),
			wantCurrent:   6,
			wantLongest:   6,
		},
		{
			name:          "consecutive day below record keeps longest",
			current:       2,
			longest:       9,
			lastCompleted: ptr(day(0)),
			completion:    day(1),
			wantCurrent:   3,
			wantLongest:   9,
		},
		{
			name:          "gap resets current and preserves longest",
			current:       5,
			longest:       10,
			lastCompleted: ptr(day(0)),
			completion:    day(3),
			wantCurrent:   1,
			wantLongest:   10,
		},
		{
			name:          "completion before last resets",
			current:       4,
			longest:       7,
			lastCompleted: ptr(day(3)),
			completion:    day(1),
			wantCurrent:   1,
			wantLongest:   7,
		},
		{
			name:          "same day is a no-op",
			current:       4,
			longest:       7,
			lastCompleted: ptr(day(2)),
			completion:    day(2),
			wantCurrent:   4,
			wantLongest:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := UpdateStreak(tt.current, tt.longest, tt.lastCompleted, tt.completion)
			require.Equal(t, tt.wantCurrent, current)
			require.Equal(t, tt.wantLongest, longest)
		})
	}
}

func TestUpdateStreakIdempotentSameDay(t *testing.T) {
	day := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	current, longest := 3, 3
	for i := 0; i < 5; i++ {
		current, longest = UpdateStreak(current, longest, &day, day)
	}

	require.Equal(t, 3, current)
	require.Equal(t, 3, longest)
}

func ptr(t time.Time) *time.Time {
	return &t
}
