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

type FamiliesRepository struct {
	conn PgConnection
}

func NewFamiliesRepo(conn PgConnection) *FamiliesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for familiesRepo: " + err.Error())
	}
	return &FamiliesRepository{
		conn: conn,
	}
}

func (fr *FamiliesRepository) Create(ctx context.Context, family *entity.Family) (uuid.UUID, error) {
	row := fr.conn.QueryRow(ctx,
		`INSERT INTO families (owner_id, name) VALUES ($1, $2) RETURNING id;`,
		family.OwnerID,
		family.Name,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrUserNotFound
		}
		return uuid.UUID{}, errors.New("creating family db error: " + err.Error())
	}
	return id, nil
}

func (fr *FamiliesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	var family entity.Family
	family.ID = id
	// streak_multipliers is nullable jsonb; null means "use engine defaults"
	var multipliers *rewards.StreakMultipliers
	row := fr.conn.QueryRow(ctx,
		`SELECT owner_id, name, streak_multipliers, created_at, updated_at FROM families WHERE id = $1;`, id)
	if err := row.Scan(&family.OwnerID, &family.Name, &multipliers, &family.CreatedAt, &family.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFamilyNotFound
		}
		return nil, errors.New("getting family by id error: " + err.Error())
	}
	family.Multipliers = multipliers
	return &family, nil
}

func (fr *FamiliesRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error) {
	var family entity.Family
	family.OwnerID = ownerID
	var multipliers *rewards.StreakMultipliers
	row := fr.conn.QueryRow(ctx,
		`SELECT id, name, streak_multipliers, created_at, updated_at FROM families WHERE owner_id = $1;`, ownerID)
	if err := row.Scan(&family.ID, &family.Name, &multipliers, &family.CreatedAt, &family.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFamilyNotFound
		}
		return nil, errors.New("getting family by owner error: " + err.Error())
	}
	family.Multipliers = multipliers
	return &family, nil
}

func (fr *FamiliesRepository) UpdateMultipliers(ctx context.Context, familyID uuid.UUID, m *rewards.StreakMultipliers) error {
	ct, err := fr.conn.Exec(ctx,
		`UPDATE families SET streak_multipliers = $1, updated_at = NOW() WHERE id = $2;`,
		m, familyID,
	)
	if err != nil {
		return errors.New("error updating family multipliers: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFamilyNotFound
	}
	return nil
}
