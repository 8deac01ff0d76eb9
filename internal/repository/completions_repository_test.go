package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepo(mock)
	completion := entity.Completion{
		TaskID:      uuid.New(),
		KidID:       uuid.New(),
		Status:      entity.CompletionStatusPending,
		CompletedAt: time.Now(),
	}
	cid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO completions (task_id, kid_id, status, completed_at, elapsed_seconds)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(completion.TaskID, completion.KidID, completion.Status, completion.CompletedAt, (*int)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cid))
		id, err := repo.Create(ctx, &completion)
		assert.NoError(t, err)
		assert.Equal(t, cid, id)
	})
	t.Run("unknown task", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(completion.TaskID, completion.KidID, completion.Status, completion.CompletedAt, (*int)(nil)).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &completion)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(completion.TaskID, completion.KidID, completion.Status, completion.CompletedAt, (*int)(nil)).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &completion)
		assert.Error(t, err)
	})
}

func TestExistsForDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepo(mock)
	taskID := uuid.New()
	kidID := uuid.New()
	completedAt := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	query := regexp.QuoteMeta(`SELECT EXISTS (
			SELECT 1 FROM completions
			WHERE task_id = $1 AND kid_id = $2 AND status <> 'rejected'
				AND completed_at >= $3 AND completed_at < $4
		);`)
	ctx := context.Background()
	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(taskID, kidID, dayStart, dayEnd).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		exists, err := repo.ExistsForDay(ctx, taskID, kidID, completedAt)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("does not exist", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(taskID, kidID, dayStart, dayEnd).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		exists, err := repo.ExistsForDay(ctx, taskID, kidID, completedAt)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(taskID, kidID, dayStart, dayEnd).
			WillReturnError(errors.New("db error"))
		_, err := repo.ExistsForDay(ctx, taskID, kidID, completedAt)
		assert.Error(t, err)
	})
}

func TestApproveCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepo(mock)
	kidID := uuid.New()
	approverID := uuid.New()
	lastActive := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	newBalance := 54
	record := repository.ApprovalRecord{
		CompletionID:      uuid.New(),
		ApprovedByID:      &approverID,
		PointsAwarded:     12,
		MultiplierApplied: 1.2,
		NewBalance:        &newBalance,
		Streak: &rewards.StreakUpdate{
			StreakState: rewards.StreakState{
				CurrentCount:   7,
				LongestCount:   7,
				LastActiveDate: &lastActive,
				CurrentTier:    rewards.Tier3,
			},
			WasIncremented: true,
		},
	}
	updateCompletion := regexp.QuoteMeta(`UPDATE completions SET status = 'approved', points_awarded = $1, multiplier_applied = $2,
			beat_target = $3, approved_by_id = $4, approved_at = NOW()
		WHERE id = $5 AND status = 'pending';`)
	updateKid := regexp.QuoteMeta(`UPDATE kids SET points_balance = $1, updated_at = NOW() WHERE id = $2;`)
	updateStreak := regexp.QuoteMeta(`UPDATE streaks SET current_count = $1, longest_count = $2, last_active_date = $3,
				current_tier = $4, updated_at = NOW()
			WHERE kid_id = $5;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(updateCompletion).
			WithArgs(record.PointsAwarded, record.MultiplierApplied, record.BeatTarget, record.ApprovedByID, record.CompletionID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateKid).
			WithArgs(newBalance, kidID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateStreak).
			WithArgs(7, 7, &lastActive, rewards.Tier3, kidID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		err := repo.Approve(ctx, kidID, record)
		assert.NoError(t, err)
	})
	t.Run("already processed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(updateCompletion).
			WithArgs(record.PointsAwarded, record.MultiplierApplied, record.BeatTarget, record.ApprovedByID, record.CompletionID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		err := repo.Approve(ctx, kidID, record)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionProcessed)
	})
	t.Run("no balance or streak change", func(t *testing.T) {
		bare := repository.ApprovalRecord{
			CompletionID:      record.CompletionID,
			ApprovedByID:      &approverID,
			MultiplierApplied: 1.0,
		}
		mock.ExpectBegin()
		mock.ExpectExec(updateCompletion).
			WithArgs(bare.PointsAwarded, bare.MultiplierApplied, bare.BeatTarget, bare.ApprovedByID, bare.CompletionID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		err := repo.Approve(ctx, kidID, bare)
		assert.NoError(t, err)
	})
	t.Run("db error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(updateCompletion).
			WithArgs(record.PointsAwarded, record.MultiplierApplied, record.BeatTarget, record.ApprovedByID, record.CompletionID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateKid).
			WithArgs(newBalance, kidID).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.Approve(ctx, kidID, record)
		assert.Error(t, err)
	})
}

func TestRejectCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepo(mock)
	completionID := uuid.New()
	approverID := uuid.New()
	query := regexp.QuoteMeta(`UPDATE completions SET status = 'rejected', rejection_reason = $1,
			approved_by_id = $2, approved_at = NOW()
		WHERE id = $3 AND status = 'pending';`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("not actually done", approverID, completionID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Reject(ctx, completionID, approverID, "not actually done")
		assert.NoError(t, err)
	})
	t.Run("already processed", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("not actually done", approverID, completionID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Reject(ctx, completionID, approverID, "not actually done")
		assert.ErrorIs(t, err, errorvalues.ErrCompletionProcessed)
	})
}

func TestKidStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepo(mock)
	kidID := uuid.New()
	completionsQuery := regexp.QuoteMeta(`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE t.type IN ('timed', 'beat_the_timer')),
			COUNT(*) FILTER (WHERE t.type = 'family'),
			COUNT(*) FILTER (WHERE c.beat_target),
			COALESCE(SUM(c.points_awarded), 0)
		FROM completions c
		JOIN tasks t ON t.id = c.task_id
		WHERE c.kid_id = $1 AND c.status = 'approved';`)
	streakQuery := regexp.QuoteMeta(`SELECT current_count FROM streaks WHERE kid_id = $1;`)
	redemptionsQuery := regexp.QuoteMeta(`SELECT COUNT(*) FROM redemptions WHERE kid_id = $1 AND status IN ('approved', 'fulfilled');`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(completionsQuery).
			WithArgs(kidID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "timed", "family", "beat", "points"}).
				AddRow(25, 5, 3, 2, 310))
		mock.ExpectQuery(streakQuery).
			WithArgs(kidID).
			WillReturnRows(pgxmock.NewRows([]string{"current_count"}).AddRow(6))
		mock.ExpectQuery(redemptionsQuery).
			WithArgs(kidID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		stats, err := repo.KidStats(ctx, kidID)
		assert.NoError(t, err)
		assert.Equal(t, rewards.KidStats{
			TotalTasksCompleted:  25,
			CurrentStreak:        6,
			TimedTasksCompleted:  5,
			FamilyTasksCompleted: 3,
			BeatTimerCount:       2,
			TotalPointsEarned:    310,
			RedemptionCount:      1,
		}, stats)
	})
	t.Run("unknown kid", func(t *testing.T) {
		mock.ExpectQuery(completionsQuery).
			WithArgs(kidID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "timed", "family", "beat", "points"}).
				AddRow(0, 0, 0, 0, 0))
		mock.ExpectQuery(streakQuery).
			WithArgs(kidID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.KidStats(ctx, kidID)
		assert.ErrorIs(t, err, errorvalues.ErrKidNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(completionsQuery).
			WithArgs(kidID).
			WillReturnError(errors.New("db error"))
		_, err := repo.KidStats(ctx, kidID)
		assert.Error(t, err)
	})
}
