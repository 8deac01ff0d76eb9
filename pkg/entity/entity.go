package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kideo/kideo/internal/rewards"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Family struct {
	ID          uuid.UUID                  `json:"id"`
	OwnerID     uuid.UUID                  `json:"owner_id"`
	Name        string                     `json:"name"`
	Multipliers *rewards.StreakMultipliers `json:"streak_multipliers,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

type Kid struct {
	ID            uuid.UUID `json:"id"`
	FamilyID      uuid.UUID `json:"family_id"`
	Name          string    `json:"name"`
	PointsBalance int       `json:"points_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TaskCategory string

const (
	// Expected tasks are part of family life and never award points
	TaskCategoryExpected TaskCategory = "expected"
	TaskCategoryPaid     TaskCategory = "paid"
)

type TaskType string

const (
	TaskTypeIndividual   TaskType = "individual"
	TaskTypeFamily       TaskType = "family"
	TaskTypeTimed        TaskType = "timed"
	TaskTypeBeatTheTimer TaskType = "beat_the_timer"
)

// IsTimed reports whether the task runs against a timer
func (tt TaskType) IsTimed() bool {
	return tt == TaskTypeTimed || tt == TaskTypeBeatTheTimer
}

type Task struct {
	ID                 uuid.UUID    `json:"id"`
	FamilyID           uuid.UUID    `json:"family_id"`
	Title              string       `json:"title"`
	Description        string       `json:"desc"`
	Category           TaskCategory `json:"category"`
	Type               TaskType     `json:"type"`
	Points             int          `json:"points"`
	BonusPoints        int          `json:"bonus_points"`
	TimerMinutes       *int         `json:"timer_minutes,omitempty"`
	RequiresApproval   bool         `json:"requires_approval"`
	CountsTowardStreak bool         `json:"counts_toward_streak"`
	IsActive           bool         `json:"is_active"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type CompletionStatus string

const (
	CompletionStatusPending  CompletionStatus = "pending"
	CompletionStatusApproved CompletionStatus = "approved"
	CompletionStatusRejected CompletionStatus = "rejected"
)

type Completion struct {
	ID                uuid.UUID        `json:"id"`
	TaskID            uuid.UUID        `json:"task_id"`
	KidID             uuid.UUID        `json:"kid_id"`
	Status            CompletionStatus `json:"status"`
	CompletedAt       time.Time        `json:"completed_at"`
	ElapsedSeconds    *int             `json:"elapsed_seconds,omitempty"`
	BeatTarget        bool             `json:"beat_target"`
	PointsAwarded     int              `json:"points_awarded"`
	MultiplierApplied float64          `json:"multiplier_applied"`
	ApprovedByID      *uuid.UUID       `json:"approved_by_id,omitempty"`
	ApprovedAt        *time.Time       `json:"approved_at,omitempty"`
	RejectionReason   string           `json:"rejection_reason,omitempty"`
}

type Streak struct {
	KidID          uuid.UUID    `json:"kid_id"`
	CurrentCount   int          `json:"current_count"`
	LongestCount   int          `json:"longest_count"`
	LastActiveDate *time.Time   `json:"last_active_date,omitempty"`
	CurrentTier    rewards.Tier `json:"current_tier"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// State converts the persisted row into the engine's input form
func (s *Streak) State() rewards.StreakState {
	return rewards.StreakState{
		CurrentCount:   s.CurrentCount,
		LongestCount:   s.LongestCount,
		LastActiveDate: s.LastActiveDate,
		CurrentTier:    s.CurrentTier,
	}
}

type Reward struct {
	ID         uuid.UUID `json:"id"`
	FamilyID   uuid.UUID `json:"family_id"`
	Title      string    `json:"title"`
	PointsCost int       `json:"points_cost"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "pending"
	RedemptionStatusApproved  RedemptionStatus = "approved"
	RedemptionStatusRejected  RedemptionStatus = "rejected"
	RedemptionStatusFulfilled RedemptionStatus = "fulfilled"
)

type Redemption struct {
	ID           uuid.UUID        `json:"id"`
	RewardID     uuid.UUID        `json:"reward_id"`
	KidID        uuid.UUID        `json:"kid_id"`
	PointsCost   int              `json:"points_cost"`
	Status       RedemptionStatus `json:"status"`
	ApprovedByID *uuid.UUID       `json:"approved_by_id,omitempty"`
	ApprovedAt   *time.Time       `json:"approved_at,omitempty"`
	FulfilledAt  *time.Time       `json:"fulfilled_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type BadgeDefinition struct {
	ID          uuid.UUID             `json:"id"`
	Slug        string                `json:"slug"`
	Name        string                `json:"name"`
	Description string                `json:"desc"`
	IconEmoji   string                `json:"icon_emoji"`
	Criteria    rewards.BadgeCriteria `json:"criteria"`
	SortOrder   int                   `json:"sort_order"`
}

// Engine converts the catalog row into the evaluator's input form
func (b *BadgeDefinition) Engine() rewards.Badge {
	return rewards.Badge{
		ID:       b.ID.String(),
		Slug:     b.Slug,
		Name:     b.Name,
		Criteria: b.Criteria,
	}
}

type EarnedBadge struct {
	KidID    uuid.UUID `json:"kid_id"`
	BadgeID  uuid.UUID `json:"badge_id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earned_at"`
}
