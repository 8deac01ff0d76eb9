package rewards

import (
	"math"
	"sort"
)

// CriteriaType selects which KidStats field a badge threshold compares against.
type CriteriaType string

const (
	CriteriaTaskCount         CriteriaType = "task_count"
	CriteriaStreak            CriteriaType = "streak"
	CriteriaTimedTaskCount    CriteriaType = "timed_task_count"
	CriteriaFamilyTaskCount   CriteriaType = "family_task_count"
	CriteriaBeatTimerCount    CriteriaType = "beat_timer_count"
	CriteriaTotalPointsEarned CriteriaType = "total_points_earned"
	CriteriaRedemptionCount   CriteriaType = "redemption_count"
)

// BadgeCriteria is a single-dimension threshold; there are no compound criteria.
type BadgeCriteria struct {
	Type  CriteriaType `json:"type"`
	Value int          `json:"value"`
}

// KidStats is a read-only snapshot of a kid's cumulative numbers, assembled by
// the caller from storage. TotalPointsEarned is lifetime earnings, not the
// current balance.
type KidStats struct {
	TotalTasksCompleted  int `json:"total_tasks_completed"`
	CurrentStreak        int `json:"current_streak"`
	TimedTasksCompleted  int `json:"timed_tasks_completed"`
	FamilyTasksCompleted int `json:"family_tasks_completed"`
	BeatTimerCount       int `json:"beat_timer_count"`
	TotalPointsEarned    int `json:"total_points_earned"`
	RedemptionCount      int `json:"redemption_count"`
}

type Badge struct {
	ID       string        `json:"id"`
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	Criteria BadgeCriteria `json:"criteria"`
}

// BadgeProgress pairs a not-yet-earned badge with its progress percentage.
type BadgeProgress struct {
	Badge    Badge `json:"badge"`
	Progress int   `json:"progress"`
}

// statFor picks the stats field a criteria type compares against.
// Unknown types report false so no badge is ever granted on unrecognized criteria.
func statFor(stats KidStats, ct CriteriaType) (int, bool) {
	switch ct {
	case CriteriaTaskCount:
		return stats.TotalTasksCompleted, true
	case CriteriaStreak:
		return stats.CurrentStreak, true
	case CriteriaTimedTaskCount:
		return stats.TimedTasksCompleted, true
	case CriteriaFamilyTaskCount:
		return stats.FamilyTasksCompleted, true
	case CriteriaBeatTimerCount:
		return stats.BeatTimerCount, true
	case CriteriaTotalPointsEarned:
		return stats.TotalPointsEarned, true
	case CriteriaRedemptionCount:
		return stats.RedemptionCount, true
	default:
		return 0, false
	}
}

// MeetsCriteria reports whether the stats snapshot satisfies a badge threshold.
func MeetsCriteria(stats KidStats, criteria BadgeCriteria) bool {
	current, ok := statFor(stats, criteria.Type)
	if !ok {
		return false
	}
	return current >= criteria.Value
}

// Progress returns how close the stats are to a threshold, as 0..100.
// A zero-value threshold is trivially satisfied and reports 100.
func Progress(stats KidStats, criteria BadgeCriteria) int {
	current, ok := statFor(stats, criteria.Type)
	if !ok {
		return 0
	}
	if criteria.Value == 0 {
		return 100
	}
	ratio := float64(current) / float64(criteria.Value)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// CheckNewBadges returns the badges the kid now qualifies for but has not
// earned yet, in catalog order. Persisting the award is the caller's job.
func CheckNewBadges(allBadges []Badge, earnedSlugs map[string]struct{}, stats KidStats) []Badge {
	var newBadges []Badge
	for _, badge := range allBadges {
		if _, earned := earnedSlugs[badge.Slug]; earned {
			continue
		}
		if MeetsCriteria(stats, badge.Criteria) {
			newBadges = append(newBadges, badge)
		}
	}
	return newBadges
}

// QualifiedBadges returns every badge whose criteria currently hold, earned or
// not. Used for reconciliation, not the award flow.
func QualifiedBadges(allBadges []Badge, stats KidStats) []Badge {
	var qualified []Badge
	for _, badge := range allBadges {
		if MeetsCriteria(stats, badge.Criteria) {
			qualified = append(qualified, badge)
		}
	}
	return qualified
}

// NearbyBadges returns badges that are neither earned nor qualified but whose
// progress is at least threshold, sorted by progress descending.
func NearbyBadges(allBadges []Badge, earnedSlugs map[string]struct{}, stats KidStats, threshold int) []BadgeProgress {
	var nearby []BadgeProgress
	for _, badge := range allBadges {
		if _, earned := earnedSlugs[badge.Slug]; earned {
			continue
		}
		if MeetsCriteria(stats, badge.Criteria) {
			continue
		}
		if progress := Progress(stats, badge.Criteria); progress >= threshold {
			nearby = append(nearby, BadgeProgress{Badge: badge, Progress: progress})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Progress > nearby[j].Progress
	})
	return nearby
}
