// Package rewards holds the point, streak and badge calculations that run when
// a task completion is approved. Everything here is a pure function over plain
// values: no storage, no clock, no goroutine state. Callers gather the inputs
// and persist the outputs.
package rewards

import "math"

// Tier is the streak incentive band. Boundaries are fixed; only the
// multiplier magnitude per tier is family-configurable.
type Tier int

const (
	Tier1 Tier = iota + 1
	Tier2
	Tier3
)

// StreakMultipliers are the per-family point multipliers for each tier.
type StreakMultipliers struct {
	Tier1 float64 `json:"tier1" validate:"min=1,max=3"`
	Tier2 float64 `json:"tier2" validate:"min=1,max=3"`
	Tier3 float64 `json:"tier3" validate:"min=1,max=3"`
}

var DefaultMultipliers = StreakMultipliers{
	Tier1: 1.0,
	Tier2: 1.2,
	Tier3: 1.5,
}

// StreakTier maps a streak length to its tier: 7+ days is tier 3,
// 3-6 days tier 2, anything shorter tier 1.
func StreakTier(streakCount int) Tier {
	switch {
	case streakCount >= 7:
		return Tier3
	case streakCount >= 3:
		return Tier2
	default:
		return Tier1
	}
}

// MultiplierFor resolves the configured multiplier for a streak length.
// A nil multipliers value means the family has not configured any and the
// defaults apply.
func MultiplierFor(streakCount int, multipliers *StreakMultipliers) float64 {
	m := DefaultMultipliers
	if multipliers != nil {
		m = *multipliers
	}
	switch StreakTier(streakCount) {
	case Tier3:
		return m.Tier3
	case Tier2:
		return m.Tier2
	default:
		return m.Tier1
	}
}

// PointsWithMultiplier applies the streak multiplier to a base point value.
// Non-positive bases award nothing. The result is floored: points are whole,
// so a 1-point task under a 1.2x multiplier still awards 1.
func PointsWithMultiplier(basePoints, streakCount int, multipliers *StreakMultipliers) int {
	if basePoints <= 0 {
		return 0
	}
	return int(math.Floor(float64(basePoints) * MultiplierFor(streakCount, multipliers)))
}

// BeatsTimer reports whether the elapsed time finished strictly under the
// target. Finishing exactly on the target does not beat it.
func BeatsTimer(targetMinutes, elapsedSeconds int) bool {
	return elapsedSeconds < targetMinutes*60
}

// BeatTimerBonus returns the bonus when the task was finished strictly faster
// than the target.
func BeatTimerBonus(targetMinutes, elapsedSeconds, bonusPoints int) int {
	if BeatsTimer(targetMinutes, elapsedSeconds) {
		return bonusPoints
	}
	return 0
}

// CanAfford reports whether a balance covers a redemption cost.
func CanAfford(balance, cost int) bool {
	return balance >= cost
}

// NewBalance applies a signed delta to a balance, clamping at zero.
func NewBalance(balance, delta int) int {
	if b := balance + delta; b > 0 {
		return b
	}
	return 0
}
