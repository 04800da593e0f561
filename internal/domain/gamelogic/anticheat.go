package gamelogic

import (
	"fmt"
	"time"

	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
)

// The anti-cheat validators never read the wall clock; "today" is always
// passed in by the caller. Each returns an allow flag and a human-readable
// reason suitable for showing to the user on denial.

// ValidateBackfill decides whether a run may be created for targetDate.
// Creating runs for the future is never allowed; the past is allowed up to
// maxBackfillDays back, so a run missed late at night can still be filed.
func ValidateBackfill(targetDate, today time.Time, maxBackfillDays int) (bool, string) {
	gap := dateutil.DaysBetween(targetDate, today)

	if gap < 0 {
		return false, "Cannot create future runs"
	}

	if gap > maxBackfillDays {
		return false, fmt.Sprintf("Can only backfill up to %d day(s)", maxBackfillDays)
	}

	return true, ""
}

// CanEditRun restricts edits to today's unlocked run. A backfilled run is
// uneditable from the moment it is created.
func CanEditRun(runDate time.Time, isLocked bool, today time.Time) (bool, string) {
	if isLocked {
		return false, "Run is locked and cannot be edited"
	}

	if !dateutil.Date(runDate).Equal(dateutil.Date(today)) {
		return false, "Can only edit today's run"
	}

	return true, ""
}

func CanCompleteRun(runDate, today time.Time) (bool, string) {
	if !dateutil.Date(runDate).Equal(dateutil.Date(today)) {
		return false, "Can only complete today's run"
	}

	return true, ""
}
