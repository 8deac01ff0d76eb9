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

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (uuid.UUID, error) {
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO tasks (family_id, title, description, category, type, points, bonus_points,
			timer_minutes, requires_approval, counts_toward_streak, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`,
		task.FamilyID, task.Title, task.Description, task.Category, task.Type,
		task.Points, task.BonusPoints, task.TimerMinutes,
		task.RequiresApproval, task.CountsTowardStreak, task.IsActive,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrFamilyNotFound
		}
		return uuid.UUID{}, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	row := tr.conn.QueryRow(ctx,
		`SELECT family_id, title, description, category, type, points, bonus_points,
			timer_minutes, requires_approval, counts_toward_streak, is_active, created_at, updated_at
		FROM tasks WHERE id = $1;`, id)
	err := row.Scan(&task.FamilyID, &task.Title, &task.Description, &task.Category, &task.Type,
		&task.Points, &task.BonusPoints, &task.TimerMinutes,
		&task.RequiresApproval, &task.CountsTowardStreak, &task.IsActive, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) GetByFamilyID(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	query := `SELECT id, family_id, title, description, category, type, points, bonus_points,
			timer_minutes, requires_approval, counts_toward_streak, is_active, created_at, updated_at
		FROM tasks WHERE family_id = $1`
	if !includeInactive {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at;`
	rows, err := tr.conn.Query(ctx, query, familyID)
	if err != nil {
		return nil, errors.New("getting tasks by family error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.FamilyID, &t.Title, &t.Description, &t.Category, &t.Type,
			&t.Points, &t.BonusPoints, &t.TimerMinutes,
			&t.RequiresApproval, &t.CountsTowardStreak, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected task rows error: " + rows.Err().Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2, category = $3, type = $4, points = $5,
			bonus_points = $6, timer_minutes = $7, requires_approval = $8,
			counts_toward_streak = $9, is_active = $10, updated_at = NOW()
		WHERE id = $11;`,
		task.Title, task.Description, task.Category, task.Type, task.Points,
		task.BonusPoints, task.TimerMinutes, task.RequiresApproval,
		task.CountsTowardStreak, task.IsActive, task.ID,
	)
	if err != nil {
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
