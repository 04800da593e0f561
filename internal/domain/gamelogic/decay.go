package gamelogic

import stdmath "math"

// DecayLoss computes the XP lost after daysInactive days away, compounding
// the per-day rate. No decay applies within the grace period; past it, the
// whole inactive stretch counts. The result is floored and never exceeds
// totalXP.
func DecayLoss(totalXP, daysInactive int, rate float64, graceDays int) int {
	if totalXP <= 0 || rate <= 0 {
		return 0
	}

	if daysInactive <= graceDays || daysInactive <= 0 {
		return 0
	}

	retained := stdmath.Pow(1-rate, float64(daysInactive))
	loss := int(stdmath.Floor(float64(totalXP) * (1 - retained)))
	if loss > totalXP {
		loss = totalXP
	}

	return loss
}
