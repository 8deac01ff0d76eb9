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

type RedemptionsRepository struct {
	conn PgConnection
}

func NewRedemptionsRepo(conn PgConnection) *RedemptionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for redemptionsRepo: " + err.Error())
	}
	return &RedemptionsRepository{
		conn: conn,
	}
}

func (rr *RedemptionsRepository) Create(ctx context.Context, redemption *entity.Redemption) (uuid.UUID, error) {
	row := rr.conn.QueryRow(ctx,
		`INSERT INTO redemptions (reward_id, kid_id, points_cost, status)
		VALUES ($1, $2, $3, $4) RETURNING id;`,
		redemption.RewardID, redemption.KidID, redemption.PointsCost, redemption.Status,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrRewardNotFound
		}
		return uuid.UUID{}, errors.New("creating redemption db error: " + err.Error())
	}
	return id, nil
}

func (rr *RedemptionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	var r entity.Redemption
	r.ID = id
	row := rr.conn.QueryRow(ctx,
		`SELECT reward_id, kid_id, points_cost, status, approved_by_id, approved_at, fulfilled_at, created_at
		FROM redemptions WHERE id = $1;`, id)
	err := row.Scan(&r.RewardID, &r.KidID, &r.PointsCost, &r.Status,
		&r.ApprovedByID, &r.ApprovedAt, &r.FulfilledAt, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRedemptionNotFound
		}
		return nil, errors.New("getting redemption by id error: " + err.Error())
	}
	return &r, nil
}

func (rr *RedemptionsRepository) ListPendingByFamily(ctx context.Context, familyID uuid.UUID) ([]*entity.Redemption, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT r.id, r.reward_id, r.kid_id, r.points_cost, r.status,
			r.approved_by_id, r.approved_at, r.fulfilled_at, r.created_at
		FROM redemptions r
		JOIN kids k ON k.id = r.kid_id
		WHERE k.family_id = $1 AND r.status = 'pending'
		ORDER BY r.created_at;`, familyID)
	if err != nil {
		return nil, errors.New("listing pending redemptions error: " + err.Error())
	}
	defer rows.Close()
	return scanRedemptions(rows)
}

func (rr *RedemptionsRepository) ListByKid(ctx context.Context, kidID uuid.UUID, limit int) ([]*entity.Redemption, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, reward_id, kid_id, points_cost, status,
			approved_by_id, approved_at, fulfilled_at, created_at
		FROM redemptions WHERE kid_id = $1
		ORDER BY created_at DESC LIMIT $2;`, kidID, limit)
	if err != nil {
		return nil, errors.New("listing kid redemptions error: " + err.Error())
	}
	defer rows.Close()
	return scanRedemptions(rows)
}

func scanRedemptions(rows pgx.Rows) ([]*entity.Redemption, error) {
	redemptions := make([]*entity.Redemption, 0)
	for rows.Next() {
		r := entity.Redemption{}
		err := rows.Scan(&r.ID, &r.RewardID, &r.KidID, &r.PointsCost, &r.Status,
			&r.ApprovedByID, &r.ApprovedAt, &r.FulfilledAt, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling redemption error: " + err.Error())
		}
		redemptions = append(redemptions, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected redemption rows error: " + rows.Err().Error())
	}
	return redemptions, nil
}

// Approve marks the redemption approved and debits the kid's balance in one
// transaction. A redemption past pending surfaces as ErrRedemptionProcessed.
func (rr *RedemptionsRepository) Approve(ctx context.Context, redemptionID, approverID, kidID uuid.UUID, newBalance int) error {
	tx, err := rr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting redemption approval tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx,
		`UPDATE redemptions SET status = 'approved', approved_by_id = $1, approved_at = NOW()
		WHERE id = $2 AND status = 'pending';`,
		approverID, redemptionID,
	)
	if err != nil {
		return errors.New("approving redemption error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRedemptionProcessed
	}
	_, err = tx.Exec(ctx,
		`UPDATE kids SET points_balance = $1, updated_at = NOW() WHERE id = $2;`,
		newBalance, kidID,
	)
	if err != nil {
		return errors.New("debiting kid balance error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing redemption approval error: " + err.Error())
	}
	return nil
}

func (rr *RedemptionsRepository) Reject(ctx context.Context, redemptionID, approverID uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx,
		`UPDATE redemptions SET status = 'rejected', approved_by_id = $1, approved_at = NOW()
		WHERE id = $2 AND status = 'pending';`,
		approverID, redemptionID,
	)
	if err != nil {
		return errors.New("rejecting redemption error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRedemptionProcessed
	}
	return nil
}

func (rr *RedemptionsRepository) Fulfill(ctx context.Context, redemptionID uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx,
		`UPDATE redemptions SET status = 'fulfilled', fulfilled_at = NOW()
		WHERE id = $1 AND status = 'approved';`,
		redemptionID,
	)
	if err != nil {
		return errors.New("fulfilling redemption error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRedemptionProcessed
	}
	return nil
}
