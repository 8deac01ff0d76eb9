package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, completion *entity.Completion) (uuid.UUID, error) {
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO completions (task_id, kid_id, status, completed_at, elapsed_seconds)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		completion.TaskID, completion.KidID, completion.Status,
		completion.CompletedAt, completion.ElapsedSeconds,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrTaskNotFound
		}
		return uuid.UUID{}, errors.New("creating completion db error: " + err.Error())
	}
	return id, nil
}

func (cr *CompletionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Completion, error) {
	var c entity.Completion
	c.ID = id
	row := cr.conn.QueryRow(ctx,
		`SELECT task_id, kid_id, status, completed_at, elapsed_seconds, beat_target,
			points_awarded, multiplier_applied, approved_by_id, approved_at, rejection_reason
		FROM completions WHERE id = $1;`, id)
	err := row.Scan(&c.TaskID, &c.KidID, &c.Status, &c.CompletedAt, &c.ElapsedSeconds, &c.BeatTarget,
		&c.PointsAwarded, &c.MultiplierApplied, &c.ApprovedByID, &c.ApprovedAt, &c.RejectionReason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCompletionNotFound
		}
		return nil, errors.New("getting completion by id error: " + err.Error())
	}
	return &c, nil
}

// ExistsForDay checks for a non-rejected completion of the task by the kid on
// the given calendar day. The day boundary is the same naive midnight the
// streak engine uses.
func (cr *CompletionsRepository) ExistsForDay(ctx context.Context, taskID, kidID uuid.UUID, day time.Time) (bool, error) {
	start := rewards.StartOfDay(day)
	end := start.AddDate(0, 0, 1)
	var exists bool
	row := cr.conn.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM completions
			WHERE task_id = $1 AND kid_id = $2 AND status <> 'rejected'
				AND completed_at >= $3 AND completed_at < $4
		);`, taskID, kidID, start, end)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking completion for day error: " + err.Error())
	}
	return exists, nil
}

func (cr *CompletionsRepository) ListPendingByFamily(ctx context.Context, familyID uuid.UUID) ([]*entity.Completion, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT c.id, c.task_id, c.kid_id, c.status, c.completed_at, c.elapsed_seconds, c.beat_target,
			c.points_awarded, c.multiplier_applied, c.approved_by_id, c.approved_at, c.rejection_reason
		FROM completions c
		JOIN kids k ON k.id = c.kid_id
		WHERE k.family_id = $1 AND c.status = 'pending'
		ORDER BY c.completed_at;`, familyID)
	if err != nil {
		return nil, errors.New("listing pending completions error: " + err.Error())
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func (cr *CompletionsRepository) ListByKid(ctx context.Context, kidID uuid.UUID, limit, offset int) ([]*entity.Completion, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, task_id, kid_id, status, completed_at, elapsed_seconds, beat_target,
			points_awarded, multiplier_applied, approved_by_id, approved_at, rejection_reason
		FROM completions WHERE kid_id = $1
		ORDER BY completed_at DESC LIMIT $2 OFFSET $3;`, kidID, limit, offset)
	if err != nil {
		return nil, errors.New("listing kid completions error: " + err.Error())
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func scanCompletions(rows pgx.Rows) ([]*entity.Completion, error) {
	completions := make([]*entity.Completion, 0)
	for rows.Next() {
		c := entity.Completion{}
		err := rows.Scan(&c.ID, &c.TaskID, &c.KidID, &c.Status, &c.CompletedAt, &c.ElapsedSeconds, &c.BeatTarget,
			&c.PointsAwarded, &c.MultiplierApplied, &c.ApprovedByID, &c.ApprovedAt, &c.RejectionReason)
		if err != nil {
			return nil, errors.New("unmarshalling completion error: " + err.Error())
		}
		completions = append(completions, &c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return completions, nil
}

// Approve writes the verdict, the kid's new balance and the advanced streak in
// a single transaction. Only a pending completion can be approved; a lost race
// surfaces as ErrCompletionProcessed.
func (cr *CompletionsRepository) Approve(ctx context.Context, kidID uuid.UUID, record ApprovalRecord) error {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting approval tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx,
		`UPDATE completions SET status = 'approved', points_awarded = $1, multiplier_applied = $2,
			beat_target = $3, approved_by_id = $4, approved_at = NOW()
		WHERE id = $5 AND status = 'pending';`,
		record.PointsAwarded, record.MultiplierApplied, record.BeatTarget,
		record.ApprovedByID, record.CompletionID,
	)
	if err != nil {
		return errors.New("approving completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionProcessed
	}
	if record.NewBalance != nil {
		_, err = tx.Exec(ctx,
			`UPDATE kids SET points_balance = $1, updated_at = NOW() WHERE id = $2;`,
			*record.NewBalance, kidID,
		)
		if err != nil {
			return errors.New("updating kid balance error: " + err.Error())
		}
	}
	if record.Streak != nil {
		s := record.Streak
		_, err = tx.Exec(ctx,
			`UPDATE streaks SET current_count = $1, longest_count = $2, last_active_date = $3,
				current_tier = $4, updated_at = NOW()
			WHERE kid_id = $5;`,
			s.CurrentCount, s.LongestCount, s.LastActiveDate, s.CurrentTier, kidID,
		)
		if err != nil {
			return errors.New("updating streak error: " + err.Error())
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing approval error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) Reject(ctx context.Context, completionID, approverID uuid.UUID, reason string) error {
	ct, err := cr.conn.Exec(ctx,
		`UPDATE completions SET status = 'rejected', rejection_reason = $1,
			approved_by_id = $2, approved_at = NOW()
		WHERE id = $3 AND status = 'pending';`,
		reason, approverID, completionID,
	)
	if err != nil {
		return errors.New("rejecting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionProcessed
	}
	return nil
}

// KidStats aggregates the cumulative counters badge criteria compare against.
// Only approved completions count; redemptions count once approved or fulfilled.
func (cr *CompletionsRepository) KidStats(ctx context.Context, kidID uuid.UUID) (rewards.KidStats, error) {
	var stats rewards.KidStats
	row := cr.conn.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE t.type IN ('timed', 'beat_the_timer')),
			COUNT(*) FILTER (WHERE t.type = 'family'),
			COUNT(*) FILTER (WHERE c.beat_target),
			COALESCE(SUM(c.points_awarded), 0)
		FROM completions c
		JOIN tasks t ON t.id = c.task_id
		WHERE c.kid_id = $1 AND c.status = 'approved';`, kidID)
	err := row.Scan(&stats.TotalTasksCompleted, &stats.TimedTasksCompleted,
		&stats.FamilyTasksCompleted, &stats.BeatTimerCount, &stats.TotalPointsEarned)
	if err != nil {
		return rewards.KidStats{}, errors.New("aggregating completion stats error: " + err.Error())
	}
	row = cr.conn.QueryRow(ctx,
		`SELECT current_count FROM streaks WHERE kid_id = $1;`, kidID)
	if err := row.Scan(&stats.CurrentStreak); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rewards.KidStats{}, errorvalues.ErrKidNotFound
		}
		return rewards.KidStats{}, errors.New("reading streak count error: " + err.Error())
	}
	row = cr.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM redemptions WHERE kid_id = $1 AND status IN ('approved', 'fulfilled');`, kidID)
	if err := row.Scan(&stats.RedemptionCount); err != nil {
		return rewards.KidStats{}, errors.New("counting redemptions error: " + err.Error())
	}
	return stats, nil
}
