package rewards

import "time"

// StreakState is the persisted streak of one kid. A nil LastActiveDate means
// the kid has never completed a streak-eligible task.
type StreakState struct {
	CurrentCount   int        `json:"current_count"`
	LongestCount   int        `json:"longest_count"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	CurrentTier    Tier       `json:"current_tier"`
}

// StreakUpdate is the result of applying one completion to a streak.
type StreakUpdate struct {
	StreakState
	WasIncremented bool `json:"was_incremented"`
	WasBroken      bool `json:"was_broken"`
}

// InitialStreak is the zero state a kid starts with.
func InitialStreak() StreakState {
	return StreakState{
		CurrentCount:   0,
		LongestCount:   0,
		LastActiveDate: nil,
		CurrentTier:    Tier1,
	}
}

// StartOfDay truncates a timestamp to midnight in its own location. The engine
// is timezone-naive: callers normalize to the family's timezone first.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween is the absolute number of whole calendar days between two dates.
func DaysBetween(a, b time.Time) int {
	d := StartOfDay(b).Sub(StartOfDay(a))
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// CalculateStreakUpdate applies a completion timestamp to the previous streak
// state. Streaks count calendar days, not rolling 24h windows: a second
// completion on the same day changes nothing, the next day advances the
// streak, and a gap of more than one day breaks it down to 1 (the completion
// itself starts the new streak).
func CalculateStreakUpdate(prev StreakState, completedAt time.Time) StreakUpdate {
	if prev.LastActiveDate == nil {
		// First ever qualifying activity
		last := completedAt
		return StreakUpdate{
			StreakState: StreakState{
				CurrentCount:   1,
				LongestCount:   max(prev.LongestCount, 1),
				LastActiveDate: &last,
				CurrentTier:    StreakTier(1),
			},
			WasIncremented: true,
		}
	}

	switch days := DaysBetween(*prev.LastActiveDate, completedAt); {
	case days > 1:
		last := completedAt
		return StreakUpdate{
			StreakState: StreakState{
				CurrentCount:   1,
				LongestCount:   max(prev.LongestCount, 1),
				LastActiveDate: &last,
				CurrentTier:    StreakTier(1),
			},
			WasIncremented: true,
			WasBroken:      true,
		}
	case days == 1:
		count := prev.CurrentCount + 1
		last := completedAt
		return StreakUpdate{
			StreakState: StreakState{
				CurrentCount:   count,
				LongestCount:   max(prev.LongestCount, count),
				LastActiveDate: &last,
				CurrentTier:    StreakTier(count),
			},
			WasIncremented: true,
		}
	default:
		// Same calendar day: idempotent, the first completion's date stays
		return StreakUpdate{
			StreakState: StreakState{
				CurrentCount:   prev.CurrentCount,
				LongestCount:   prev.LongestCount,
				LastActiveDate: prev.LastActiveDate,
				CurrentTier:    StreakTier(prev.CurrentCount),
			},
		}
	}
}
