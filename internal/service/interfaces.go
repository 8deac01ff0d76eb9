package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name       string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password   string `validate:"required,min=8,max=72"`
	FamilyName string `validate:"required,min=1,max=100"`
}

type UserServiceI interface {
	// Validates credentials, creates the parent user and their family.
	// Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type UpdateMultipliersRequest struct {
	Tier1 float64 `validate:"min=1,max=3"`
	Tier2 float64 `validate:"min=1,max=3"`
	Tier3 float64 `validate:"min=1,max=3"`
}

type FamilyServiceI interface {
	// Resolves the family the parent owns; every other service scopes through it
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error)
	// Replaces the streak multipliers after validating each tier stays in [1.0, 3.0]
	UpdateMultipliers(ctx context.Context, ownerID uuid.UUID, req *UpdateMultipliersRequest) (*entity.Family, error)
	// Clears configured multipliers so the defaults apply again
	ResetMultipliers(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error)
}

type CreateKidRequest struct {
	Name string `validate:"required,min=1,max=100"`
}

// KidDetail is the full kid view: balance, streak and earned badges together.
type KidDetail struct {
	Kid    *entity.Kid           `json:"kid"`
	Streak *entity.Streak        `json:"streak"`
	Badges []*entity.EarnedBadge `json:"badges"`
}

type KidsServiceI interface {
	CreateKid(ctx context.Context, ownerID uuid.UUID, req *CreateKidRequest) (*entity.Kid, error)
	GetKids(ctx context.Context, ownerID uuid.UUID) ([]*entity.Kid, error)
	GetKid(ctx context.Context, ownerID, kidID uuid.UUID) (*KidDetail, error)
	DeleteKid(ctx context.Context, ownerID, kidID uuid.UUID) error
}

type CreateTaskRequest struct {
	Title              string `validate:"required,min=1,max=200"`
	Description        string `validate:"max=2000"`
	Category           string `validate:"required,oneof=expected paid"`
	Type               string `validate:"required,oneof=individual family timed beat_the_timer"`
	Points             int    `validate:"min=0,max=1000"`
	BonusPoints        int    `validate:"min=0,max=1000"`
	TimerMinutes       *int   `validate:"omitempty,min=1,max=480"`
	RequiresApproval   bool
	CountsTowardStreak bool
}

type UpdateTaskRequest struct {
	CreateTaskRequest
	IsActive bool
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	GetTasks(ctx context.Context, ownerID uuid.UUID, includeInactive bool) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

type LogCompletionRequest struct {
	TaskID         uuid.UUID `validate:"required"`
	KidID          uuid.UUID `validate:"required"`
	ElapsedSeconds *int      `validate:"omitempty,min=0"`
}

// ApprovalResult is what an approval produced: the awarded points, the streak
// after the update and any badges earned along the way.
type ApprovalResult struct {
	Completion    *entity.Completion        `json:"completion"`
	PointsAwarded int                       `json:"points_awarded"`
	Multiplier    float64                   `json:"multiplier"`
	Streak        *rewards.StreakUpdate     `json:"streak,omitempty"`
	NewBadges     []*entity.BadgeDefinition `json:"new_badges"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CompletionsServiceI interface {
	// Logs a kid's completion. Auto-approves when the task does not require
	// parental sign-off
	LogCompletion(ctx context.Context, req *LogCompletionRequest) (*entity.Completion, *ApprovalResult, error)
	ListPending(ctx context.Context, ownerID uuid.UUID) ([]*entity.Completion, error)
	ListKidHistory(ctx context.Context, ownerID, kidID uuid.UUID, pagination PaginationOpts) ([]*entity.Completion, error)
	// Approves a pending completion: awards multiplied points, advances the
	// streak and evaluates badges, all against the pre-approval streak tier
	Approve(ctx context.Context, ownerID, completionID uuid.UUID) (*ApprovalResult, error)
	Reject(ctx context.Context, ownerID, completionID uuid.UUID, reason string) error
}

type CreateRewardRequest struct {
	Title      string `validate:"required,min=1,max=200"`
	PointsCost int    `validate:"required,min=1,max=100000"`
}

type UpdateRewardRequest struct {
	CreateRewardRequest
	IsActive bool
}

type RedemptionRequest struct {
	RewardID uuid.UUID `validate:"required"`
	KidID    uuid.UUID `validate:"required"`
}

type RewardsServiceI interface {
	CreateReward(ctx context.Context, ownerID uuid.UUID, req *CreateRewardRequest) (*entity.Reward, error)
	GetRewards(ctx context.Context, ownerID uuid.UUID, includeInactive bool) ([]*entity.Reward, error)
	UpdateReward(ctx context.Context, ownerID, rewardID uuid.UUID, req *UpdateRewardRequest) (*entity.Reward, error)
	DeleteReward(ctx context.Context, ownerID, rewardID uuid.UUID) error
	// Creates a pending redemption after checking the kid can afford the reward
	RequestRedemption(ctx context.Context, req *RedemptionRequest) (*entity.Redemption, error)
	ListPendingRedemptions(ctx context.Context, ownerID uuid.UUID) ([]*entity.Redemption, error)
	ListKidRedemptions(ctx context.Context, ownerID, kidID uuid.UUID, limit int) ([]*entity.Redemption, error)
	// Re-checks affordability and debits the balance in the approval transaction
	ApproveRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) (*entity.Redemption, error)
	RejectRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) error
	FulfillRedemption(ctx context.Context, ownerID, redemptionID uuid.UUID) error
}

// KidProgress is the stats snapshot plus the badges within reach.
type KidProgress struct {
	Stats  rewards.KidStats        `json:"stats"`
	Nearby []rewards.BadgeProgress `json:"nearby_badges"`
}

type BadgesServiceI interface {
	Catalog(ctx context.Context) ([]*entity.BadgeDefinition, error)
	EarnedBadges(ctx context.Context, ownerID, kidID uuid.UUID) ([]*entity.EarnedBadge, error)
	// Progress toward unearned badges, closest first
	Progress(ctx context.Context, ownerID, kidID uuid.UUID) (*KidProgress, error)
}
