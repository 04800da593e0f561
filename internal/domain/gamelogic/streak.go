package gamelogic

import (
	"time"

	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/pkg/math"
)

// UpdateStreak returns the next (current, longest) streak counters after a
// completion on completionDate. lastCompleted is nil on the first ever
// completion.
//
// A repeated same-day call returns the inputs unchanged, so the function is
// idempotent under duplicate toggles; longest never decreases.
func UpdateStreak(
	current, longest int,
	lastCompleted *time.Time,
	completionDate time.Time,
) (int, int) {
	if lastCompleted == nil {
		return 1, 1
	}

	gap := dateutil.DaysBetween(*lastCompleted, completionDate)
	switch {
	case gap == 1:
		newCurrent := current + 1
		return newCurrent, math.MaxInt(longest, newCurrent)
	case gap > 1 || gap < 0:
		// Missed at least a day, or the clock went backwards. Reset the
		// running streak, keep the record.
		return 1, longest
	default:
		return current, longest
	}
}
