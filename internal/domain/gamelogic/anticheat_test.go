package gamelogic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC)

func TestValidateBackfill(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		allow  bool
	}{
		{name: "today", target: today, allow: true},
		{name: "yesterday", target: today.AddDate(0, 0, -1), allow: true},
		{name: "two days ago", target: today.AddDate(0, 0, -2), allow: false},
		{name: "tomorrow", target: today.AddDate(0, 0, 1), allow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allow, reason := ValidateBackfill(tt.target, today, 1)
			require.Equal(t, tt.allow, allow)
			if !tt.allow {
				require.NotEmpty(t, reason)
			}
		})
	}
}

func TestCanEditRun(t *testing.T) {
	allow, _ := CanEditRun(today, false, today)
	require.True(t, allow)

	allow, reason := CanEditRun(today, true, today)
	require.False(t, allow)
	require.Equal(t, "Run is locked and cannot be edited", reason)

	// A backfilled run is immediately uneditable.
	allow, reason = CanEditRun(today.AddDate(0, 0, -1), false, today)
	require.False(t, allow)
	require.Equal(t, "Can only edit today's run", reason)
}

func TestCanCompleteRun(t *testing.T) {
	allow, _ := CanCompleteRun(today, today)
	require.True(t, allow)

	allow, _ = CanCompleteRun(today.AddDate(0, 0, -1), today)
	require.False(t, allow)

	allow, _ = CanCompleteRun(today.AddDate(0, 0, 1), today)
	require.False(t, allow)
}
