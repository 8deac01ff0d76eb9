package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/kideo/kideo/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(conn PgConnection) *BadgesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	return &BadgesRepository{
		conn: conn,
	}
}

// GetAll returns the whole catalog in sort_order; award order follows it.
func (br *BadgesRepository) GetAll(ctx context.Context) ([]*entity.BadgeDefinition, error) {
	badges := make([]*entity.BadgeDefinition, 0)
	rows, err := br.conn.Query(ctx,
		`SELECT id, slug, name, description, icon_emoji, criteria, sort_order
		FROM badges ORDER BY sort_order;`)
	if err != nil {
		return nil, errors.New("getting badge catalog error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		b := entity.BadgeDefinition{}
		err = rows.Scan(&b.ID, &b.Slug, &b.Name, &b.Description, &b.IconEmoji, &b.Criteria, &b.SortOrder)
		if err != nil {
			return nil, errors.New("unmarshalling badge error: " + err.Error())
		}
		badges = append(badges, &b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected badge rows error: " + rows.Err().Error())
	}
	return badges, nil
}

func (br *BadgesRepository) GetEarnedByKid(ctx context.Context, kidID uuid.UUID) ([]*entity.EarnedBadge, error) {
	earned := make([]*entity.EarnedBadge, 0)
	rows, err := br.conn.Query(ctx,
		`SELECT kb.badge_id, b.slug, b.name, kb.earned_at
		FROM kid_badges kb
		JOIN badges b ON b.id = kb.badge_id
		WHERE kb.kid_id = $1
		ORDER BY kb.earned_at;`, kidID)
	if err != nil {
		return nil, errors.New("getting earned badges error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.EarnedBadge{KidID: kidID}
		err = rows.Scan(&e.BadgeID, &e.Slug, &e.Name, &e.EarnedAt)
		if err != nil {
			return nil, errors.New("unmarshalling earned badge error: " + err.Error())
		}
		earned = append(earned, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected earned badge rows error: " + rows.Err().Error())
	}
	return earned, nil
}

// Award persists new awards. ON CONFLICT keeps re-evaluation idempotent when
// two approvals race on the same kid.
func (br *BadgesRepository) Award(ctx context.Context, kidID uuid.UUID, badgeIDs []uuid.UUID) error {
	for _, badgeID := range badgeIDs {
		_, err := br.conn.Exec(ctx,
			`INSERT INTO kid_badges (kid_id, badge_id) VALUES ($1, $2)
			ON CONFLICT (kid_id, badge_id) DO NOTHING;`,
			kidID, badgeID,
		)
		if err != nil {
			return errors.New("awarding badge error: " + err.Error())
		}
	}
	return nil
}
