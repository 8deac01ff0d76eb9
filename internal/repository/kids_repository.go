package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

type KidsRepository struct {
	conn PgConnection
}

func NewKidsRepo(conn PgConnection) *KidsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for kidsRepo: " + err.Error())
	}
	return &KidsRepository{
		conn: conn,
	}
}

// Create inserts the kid and its zero streak row in one transaction, so a kid
// never exists without a streak.
func (kr *KidsRepository) Create(ctx context.Context, kid *entity.Kid) (uuid.UUID, error) {
	tx, err := kr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("starting kid creation tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	row := tx.QueryRow(ctx,
		`INSERT INTO kids (family_id, name) VALUES ($1, $2) RETURNING id;`,
		kid.FamilyID,
		kid.Name,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrKidNameTaken
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrFamilyNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating kid db error: " + err.Error())
	}
	initial := rewards.InitialStreak()
	_, err = tx.Exec(ctx,
		`INSERT INTO streaks (kid_id, current_count, longest_count, last_active_date, current_tier)
		VALUES ($1, $2, $3, $4, $5);`,
		id, initial.CurrentCount, initial.LongestCount, initial.LastActiveDate, initial.CurrentTier,
	)
	if err != nil {
		return uuid.UUID{}, errors.New("creating initial streak error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing kid creation error: " + err.Error())
	}
	return id, nil
}

func (kr *KidsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Kid, error) {
	var kid entity.Kid
	kid.ID = id
	row := kr.conn.QueryRow(ctx,
		`SELECT family_id, name, points_balance, created_at, updated_at FROM kids WHERE id = $1;`, id)
	if err := row.Scan(&kid.FamilyID, &kid.Name, &kid.PointsBalance, &kid.CreatedAt, &kid.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrKidNotFound
		}
		return nil, errors.New("getting kid by id error: " + err.Error())
	}
	return &kid, nil
}

func (kr *KidsRepository) GetByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Kid, error) {
	kids := make([]*entity.Kid, 0)
	rows, err := kr.conn.Query(ctx,
		`SELECT id, family_id, name, points_balance, created_at, updated_at
		FROM kids WHERE family_id = $1 ORDER BY created_at;`, familyID)
	if err != nil {
		return nil, errors.New("getting kids by family error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		k := entity.Kid{}
		err = rows.Scan(&k.ID, &k.FamilyID, &k.Name, &k.PointsBalance, &k.CreatedAt, &k.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling kid error: " + err.Error())
		}
		kids = append(kids, &k)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected kid rows error: " + rows.Err().Error())
	}
	return kids, nil
}

func (kr *KidsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := kr.conn.Exec(ctx, `DELETE FROM kids WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting kid: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrKidNotFound
	}
	return nil
}

func (kr *KidsRepository) GetStreak(ctx context.Context, kidID uuid.UUID) (*entity.Streak, error) {
	var streak entity.Streak
	streak.KidID = kidID
	row := kr.conn.QueryRow(ctx,
		`SELECT current_count, longest_count, last_active_date, current_tier, updated_at
		FROM streaks WHERE kid_id = $1;`, kidID)
	err := row.Scan(&streak.CurrentCount, &streak.LongestCount, &streak.LastActiveDate, &streak.CurrentTier, &streak.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrKidNotFound
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &streak, nil
}
