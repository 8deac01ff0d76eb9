package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/pkg/entity"
)

type RewardsRepository struct {
	conn PgConnection
}

func NewRewardsRepo(conn PgConnection) *RewardsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for rewardsRepo: " + err.Error())
	}
	return &RewardsRepository{
		conn: conn,
	}
}

func (rr *RewardsRepository) Create(ctx context.Context, reward *entity.Reward) (uuid.UUID, error) {
	row := rr.conn.QueryRow(ctx,
		`INSERT INTO rewards (family_id, title, points_cost, is_active)
		VALUES ($1, $2, $3, $4) RETURNING id;`,
		reward.FamilyID, reward.Title, reward.PointsCost, reward.IsActive,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrFamilyNotFound
		}
		return uuid.UUID{}, errors.New("creating reward db error: " + err.Error())
	}
	return id, nil
}

func (rr *RewardsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	var reward entity.Reward
	reward.ID = id
	row := rr.conn.QueryRow(ctx,
		`SELECT family_id, title, points_cost, is_active, created_at, updated_at
		FROM rewards WHERE id = $1;`, id)
	err := row.Scan(&reward.FamilyID, &reward.Title, &reward.PointsCost,
		&reward.IsActive, &reward.CreatedAt, &reward.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRewardNotFound
		}
		return nil, errors.New("getting reward by id error: " + err.Error())
	}
	return &reward, nil
}

func (rr *RewardsRepository) GetByFamilyID(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]*entity.Reward, error) {
	rewardsList := make([]*entity.Reward, 0)
	query := `SELECT id, family_id, title, points_cost, is_active, created_at, updated_at
		FROM rewards WHERE family_id = $1`
	if !includeInactive {
		query += ` AND is_active`
	}
	query += ` ORDER BY points_cost;`
	rows, err := rr.conn.Query(ctx, query, familyID)
	if err != nil {
		return nil, errors.New("getting rewards by family error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.Reward{}
		err = rows.Scan(&r.ID, &r.FamilyID, &r.Title, &r.PointsCost, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling reward error: " + err.Error())
		}
		rewardsList = append(rewardsList, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected reward rows error: " + rows.Err().Error())
	}
	return rewardsList, nil
}

func (rr *RewardsRepository) Update(ctx context.Context, reward *entity.Reward) error {
	ct, err := rr.conn.Exec(ctx,
		`UPDATE rewards SET title = $1, points_cost = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4;`,
		reward.Title, reward.PointsCost, reward.IsActive, reward.ID,
	)
	if err != nil {
		return errors.New("error updating reward: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRewardNotFound
	}
	return nil
}

func (rr *RewardsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM rewards WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting reward: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRewardNotFound
	}
	return nil
}
