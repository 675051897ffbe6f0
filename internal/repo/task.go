package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/XonLoke/project-tracker/internal/model"
)

var ErrorNotFound = errors.New("not found")

// completion_date is rendered as a plain timestamp string on the wire.
const completionDateLayout = "2006-01-02 15:04:05"

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (name, description, points, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, points, image_url
	`, t.Name, t.Description, t.Points, t.ImageURL).Scan(
		&t.ID, &t.Name, &t.Description, &t.Points, &t.ImageURL,
	)
	return t, err
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET name = $2, description = $3, points = $4, image_url = $5
		WHERE id = $1
		RETURNING id, name, description, points, image_url
	`, t.ID, t.Name, t.Description, t.Points, t.ImageURL).Scan(
		&t.ID, &t.Name, &t.Description, &t.Points, &t.ImageURL,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, points, image_url
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Points, &t.ImageURL); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

// GetWithProgress left-joins the task with its progress row and the
// completing user. A task with several progress rows yields the most
// recently completed one; a task with none yields all-null progress.
func (r *TaskRepo) GetWithProgress(ctx context.Context, id int64) (model.TaskWithProgress, error) {
	var (
		result         model.TaskWithProgress
		completionDate *time.Time
	)

	err := r.pool.QueryRow(ctx, `
		SELECT t.id, t.name, t.description, t.points, t.image_url,
		       tp.id, tp.user_id, u.username, u.email, tp.completion_date, tp.notes
		FROM tasks t
		LEFT JOIN task_progress tp ON tp.task_id = t.id
		LEFT JOIN users u ON u.id = tp.user_id
		WHERE t.id = $1
		ORDER BY tp.completion_date DESC NULLS LAST, tp.id DESC
		LIMIT 1
	`, id).Scan(
		&result.Task.ID, &result.Task.Name, &result.Task.Description,
		&result.Task.Points, &result.Task.ImageURL,
		&result.Progress.ProgressID, &result.Progress.UserID,
		&result.Progress.Username, &result.Progress.Email,
		&completionDate, &result.Progress.Notes,
	)

	if err == pgx.ErrNoRows {
		return result, ErrorNotFound
	}
	if err != nil {
		return result, err
	}

	if completionDate != nil {
		s := completionDate.Format(completionDateLayout)
		result.Progress.CompletionDate = &s
	}
	return result, nil
}
