package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type FamiliesRepositoryI interface {
	// Creates family owned by user. Multipliers start unset (engine defaults apply)
	Create(ctx context.Context, family *entity.Family) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)
	// Looks up the family a parent owns. Used to scope every request
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error)
	// Replaces the streak multipliers triple; nil clears back to defaults
	UpdateMultipliers(ctx context.Context, familyID uuid.UUID, m *rewards.StreakMultipliers) error
}

type KidsRepositoryI interface {
	// Creates kid together with its zero streak row in one transaction
	Create(ctx context.Context, kid *entity.Kid) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Kid, error)
	GetByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Kid, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns the kid's streak row
	GetStreak(ctx context.Context, kidID uuid.UUID) (*entity.Streak, error)
}

type TasksRepositoryI interface {
	Create(ctx context.Context, task *entity.Task) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	GetByFamilyID(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApprovalRecord is everything the approval transaction writes: the completion
// verdict, the kid's new balance and, when the streak advanced, the new streak
// row. All three are applied atomically.
type ApprovalRecord struct {
	CompletionID      uuid.UUID
	ApprovedByID      *uuid.UUID
	PointsAwarded     int
	MultiplierApplied float64
	BeatTarget        bool
	NewBalance        *int
	Streak            *rewards.StreakUpdate
}

type CompletionsRepositoryI interface {
	Create(ctx context.Context, completion *entity.Completion) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Completion, error)
	// Reports whether the kid already logged this task on the given calendar day
	ExistsForDay(ctx context.Context, taskID, kidID uuid.UUID, day time.Time) (bool, error)
	ListPendingByFamily(ctx context.Context, familyID uuid.UUID) ([]*entity.Completion, error)
	ListByKid(ctx context.Context, kidID uuid.UUID, limit, offset int) ([]*entity.Completion, error)
	// Applies an approval atomically: completion row, kid balance, streak row
	Approve(ctx context.Context, kidID uuid.UUID, record ApprovalRecord) error
	Reject(ctx context.Context, completionID, approverID uuid.UUID, reason string) error
	// Assembles the cumulative stats snapshot the badge evaluator consumes
	KidStats(ctx context.Context, kidID uuid.UUID) (rewards.KidStats, error)
}

type RewardsRepositoryI interface {
	Create(ctx context.Context, reward *entity.Reward) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
	GetByFamilyID(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]*entity.Reward, error)
	Update(ctx context.Context, reward *entity.Reward) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RedemptionsRepositoryI interface {
	Create(ctx context.Context, redemption *entity.Redemption) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error)
	ListPendingByFamily(ctx context.Context, familyID uuid.UUID) ([]*entity.Redemption, error)
	ListByKid(ctx context.Context, kidID uuid.UUID, limit int) ([]*entity.Redemption, error)
	// Marks redemption approved and sets the kid's debited balance in one transaction
	Approve(ctx context.Context, redemptionID, approverID, kidID uuid.UUID, newBalance int) error
	Reject(ctx context.Context, redemptionID, approverID uuid.UUID) error
	Fulfill(ctx context.Context, redemptionID uuid.UUID) error
}

type BadgesRepositoryI interface {
	// Lists the whole catalog ordered by sort_order; award order follows it
	GetAll(ctx context.Context) ([]*entity.BadgeDefinition, error)
	GetEarnedByKid(ctx context.Context, kidID uuid.UUID) ([]*entity.EarnedBadge, error)
	// Persists awards; duplicates are ignored so re-evaluation stays idempotent
	Award(ctx context.Context, kidID uuid.UUID, badgeIDs []uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
