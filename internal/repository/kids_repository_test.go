package repository_test

import (
	"context"
	"database/sql"
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
	_ "github.com/lib/pq"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	familyID = uuid.New()
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestCreateKid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewKidsRepo(mock)
	kid := entity.Kid{
		FamilyID: familyID,
		Name:     "test_kid",
	}
	kidID := uuid.New()
	ctx := context.Background()
	insertKid := regexp.QuoteMeta(`INSERT INTO kids (family_id, name) VALUES ($1, $2) RETURNING id;`)
	insertStreak := regexp.QuoteMeta(`INSERT INTO streaks (kid_id, current_count, longest_count, last_active_date, current_tier)
		VALUES ($1, $2, $3, $4, $5);`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertKid).
			WithArgs(kid.FamilyID, kid.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(kidID))
		mock.ExpectExec(insertStreak).
			WithArgs(kidID, 0, 0, (*time.Time)(nil), rewards.Tier1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		id, err := repo.Create(ctx, &kid)
		assert.NoError(t, err)
		assert.Equal(t, kidID, id)
	})
	t.Run("name taken", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertKid).
			WithArgs(kid.FamilyID, kid.Name).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &kid)
		assert.ErrorIs(t, err, errorvalues.ErrKidNameTaken)
	})
	t.Run("unknown family", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertKid).
			WithArgs(kid.FamilyID, kid.Name).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &kid)
		assert.ErrorIs(t, err, errorvalues.ErrFamilyNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertKid).
			WithArgs(kid.FamilyID, kid.Name).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &kid)
		assert.Error(t, err)
	})
}

func TestGetKidByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewKidsRepo(mock)
	kid := entity.Kid{
		ID:            uuid.New(),
		FamilyID:      familyID,
		Name:          "test_kid",
		PointsBalance: 42,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT family_id, name, points_balance, created_at, updated_at FROM kids WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(kid.ID).
			WillReturnRows(pgxmock.NewRows([]string{"family_id", "name", "points_balance", "created_at", "updated_at"}).
				AddRow(kid.FamilyID, kid.Name, kid.PointsBalance, kid.CreatedAt, kid.UpdatedAt),
			)
		result, err := repo.GetByID(ctx, kid.ID)
		assert.NoError(t, err)
		assert.Equal(t, kid, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(kid.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, kid.ID)
		assert.ErrorIs(t, err, errorvalues.ErrKidNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(kid.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, kid.ID)
		assert.Error(t, err)
	})
}

func TestGetStreak(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewKidsRepo(mock)
	kidID := uuid.New()
	lastActive := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT current_count, longest_count, last_active_date, current_tier, updated_at
		FROM streaks WHERE kid_id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		updatedAt := time.Now()
		mock.ExpectQuery(query).
			WithArgs(kidID).
			WillReturnRows(pgxmock.NewRows([]string{"current_count", "longest_count", "last_active_date", "current_tier", "updated_at"}).
				AddRow(4, 9, &lastActive, rewards.Tier2, updatedAt),
			)
		streak, err := repo.GetStreak(ctx, kidID)
		assert.NoError(t, err)
		assert.Equal(t, 4, streak.CurrentCount)
		assert.Equal(t, 9, streak.LongestCount)
		assert.Equal(t, rewards.Tier2, streak.CurrentTier)
		assert.Equal(t, lastActive, *streak.LastActiveDate)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(kidID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetStreak(ctx, kidID)
		assert.ErrorIs(t, err, errorvalues.ErrKidNotFound)
	})
}

func TestDeleteKid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewKidsRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM kids WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrKidNotFound)
	})
}

func TestKidsIntegrational(t *testing.T) {
	cfg := setupKidsTestDB(t)
	pool := repository.NewPool(cfg)
	repo := repository.NewKidsRepo(pool)
	ctx := context.Background()
	kid := entity.Kid{
		FamilyID: familyID,
		Name:     "integration_kid",
	}
	t.Run("create", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			id, err := repo.Create(ctx, &kid)
			assert.NoError(t, err)
			kid.ID = id
		})
		t.Run("name taken", func(t *testing.T) {
			_, err := repo.Create(ctx, &entity.Kid{FamilyID: familyID, Name: kid.Name})
			assert.ErrorIs(t, err, errorvalues.ErrKidNameTaken)
		})
		t.Run("unknown family", func(t *testing.T) {
			_, err := repo.Create(ctx, &entity.Kid{FamilyID: uuid.New(), Name: "orphan"})
			assert.ErrorIs(t, err, errorvalues.ErrFamilyNotFound)
		})
	})
	t.Run("streak row created alongside", func(t *testing.T) {
		streak, err := repo.GetStreak(ctx, kid.ID)
		assert.NoError(t, err)
		assert.Equal(t, 0, streak.CurrentCount)
		assert.Equal(t, 0, streak.LongestCount)
		assert.Nil(t, streak.LastActiveDate)
		assert.Equal(t, rewards.Tier1, streak.CurrentTier)
	})
	t.Run("get by family", func(t *testing.T) {
		kids, err := repo.GetByFamilyID(ctx, familyID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(kids))
		assert.Equal(t, kid.ID, kids[0].ID)
		assert.Equal(t, 0, kids[0].PointsBalance)
	})
	t.Run("delete cascades", func(t *testing.T) {
		err := repo.Delete(ctx, kid.ID)
		assert.NoError(t, err)
		_, err = repo.GetStreak(ctx, kid.ID)
		assert.ErrorIs(t, err, errorvalues.ErrKidNotFound)
	})
}

func setupKidsTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("kideo"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	ownerID := uuid.New()
	_, err = conn.Exec(`INSERT INTO users (id, name, password_hash) VALUES ($1, $2, $3);`, ownerID, "test_parent", "pass_hash")
	if err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO families (id, owner_id, name) VALUES ($1, $2, $3);`, familyID, ownerID, "test_family")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
