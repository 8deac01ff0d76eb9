package rewards_test

import (
	"testing"
	"time"

	"github.com/kideo/kideo/internal/rewards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		A, B     time.Time
		Expected int
	}{
		{Desc: "same instant", A: day0, B: day0, Expected: 0},
		{Desc: "same day different hours", A: day0, B: day0.Add(7 * time.Hour), Expected: 0},
		{Desc: "late night to early morning", A: day0.Add(8 * time.Hour), B: day0.Add(10 * time.Hour), Expected: 1},
		{Desc: "next day", A: day0, B: day0.AddDate(0, 0, 1), Expected: 1},
		{Desc: "reversed arguments", A: day0.AddDate(0, 0, 3), B: day0, Expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, rewards.DaysBetween(tc.A, tc.B))
		})
	}
}

func TestInitialStreak(t *testing.T) {
	t.Parallel()
	s := rewards.InitialStreak()
	assert.Equal(t, 0, s.CurrentCount)
	assert.Equal(t, 0, s.LongestCount)
	assert.Nil(t, s.LastActiveDate)
	assert.Equal(t, rewards.Tier1, s.CurrentTier)
}

func TestCalculateStreakUpdate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc           string
		Prev           rewards.StreakState
		CompletedAt    time.Time
		Current        int
		Longest        int
		Tier           rewards.Tier
		WasIncremented bool
		WasBroken      bool
	}{
		{
			Desc:           "first ever activity",
			Prev:           rewards.InitialStreak(),
			CompletedAt:    day0,
			Current:        1,
			Longest:        1,
			Tier:           rewards.Tier1,
			WasIncremented: true,
		},
		{
			Desc: "next day continues",
			Prev: rewards.StreakState{
				CurrentCount: 2, LongestCount: 5, LastActiveDate: datePtr(day0),
			},
			CompletedAt:    day0.AddDate(0, 0, 1),
			Current:        3,
			Longest:        5,
			Tier:           rewards.Tier2,
			WasIncremented: true,
		},
		{
			Desc: "continuation sets new longest",
			Prev: rewards.StreakState{
				CurrentCount: 6, LongestCount: 6, LastActiveDate: datePtr(day0),
			},
			CompletedAt:    day0.AddDate(0, 0, 1),
			Current:        7,
			Longest:        7,
			Tier:           rewards.Tier3,
			WasIncremented: true,
		},
		{
			Desc: "two day gap breaks",
			Prev: rewards.StreakState{
				CurrentCount: 7, LongestCount: 10, LastActiveDate: datePtr(day0),
			},
			CompletedAt:    day0.AddDate(0, 0, 3),
			Current:        1,
			Longest:        10,
			Tier:           rewards.Tier1,
			WasIncremented: true,
			WasBroken:      true,
		},
		{
			Desc: "same day is a no-op",
			Prev: rewards.StreakState{
				CurrentCount: 4, LongestCount: 9, LastActiveDate: datePtr(day0),
			},
			CompletedAt: day0.Add(5 * time.Hour),
			Current:     4,
			Longest:     9,
			Tier:        rewards.Tier2,
		},
		{
			Desc: "evening to next morning counts as a day",
			Prev: rewards.StreakState{
				CurrentCount: 1, LongestCount: 1,
				LastActiveDate: datePtr(time.Date(2025, time.March, 10, 23, 50, 0, 0, time.UTC)),
			},
			CompletedAt:    time.Date(2025, time.March, 11, 0, 10, 0, 0, time.UTC),
			Current:        2,
			Longest:        2,
			Tier:           rewards.Tier1,
			WasIncremented: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			update := rewards.CalculateStreakUpdate(tc.Prev, tc.CompletedAt)
			assert.Equal(t, tc.Current, update.CurrentCount)
			assert.Equal(t, tc.Longest, update.LongestCount)
			assert.Equal(t, tc.Tier, update.CurrentTier)
			assert.Equal(t, tc.WasIncremented, update.WasIncremented)
			assert.Equal(t, tc.WasBroken, update.WasBroken)
			require.NotNil(t, update.LastActiveDate)
			if tc.WasIncremented {
				assert.Equal(t, tc.CompletedAt, *update.LastActiveDate)
			} else {
				assert.Equal(t, *tc.Prev.LastActiveDate, *update.LastActiveDate)
			}
		})
	}
}

func TestStreakUpdateSameDayIdempotent(t *testing.T) {
	t.Parallel()
	prev := rewards.StreakState{CurrentCount: 3, LongestCount: 3, LastActiveDate: datePtr(day0)}
	first := rewards.CalculateStreakUpdate(prev, day0.Add(time.Hour))
	second := rewards.CalculateStreakUpdate(first.StreakState, day0.Add(2*time.Hour))
	assert.Equal(t, first.CurrentCount, second.CurrentCount)
	assert.Equal(t, first.LongestCount, second.LongestCount)
	assert.Equal(t, *first.LastActiveDate, *second.LastActiveDate)
	assert.False(t, second.WasIncremented)
}

func TestStreakMonotonicity(t *testing.T) {
	t.Parallel()
	// Mixed sequence of same-day repeats, continuations and breaks
	offsets := []int{0, 0, 1, 2, 3, 4, 4, 5, 9, 10, 11}
	state := rewards.InitialStreak()
	prevLongest := 0
	for _, off := range offsets {
		update := rewards.CalculateStreakUpdate(state, day0.AddDate(0, 0, off))
		assert.GreaterOrEqual(t, update.LongestCount, prevLongest)
		assert.GreaterOrEqual(t, update.LongestCount, update.CurrentCount)
		prevLongest = update.LongestCount
		state = update.StreakState
	}
	assert.Equal(t, 3, state.CurrentCount)
	assert.Equal(t, 6, state.LongestCount)
}
