package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/domain"
)

const taskColumns = `task_id, project_id, user_id, task_description, status, start_time, end_time, created_at`

type TaskRepository struct {
	db postgres.DBTX
}

func NewTaskRepository(db postgres.DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) WithTx(tx postgres.DBTX) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, userID int64, req domain.CreateRequest) (int64, error) {
	const q = `
INSERT INTO project_tasks (project_id, user_id, task_description, status, start_time, end_time)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING task_id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q, req.ProjectID, userID, req.Description, domain.DefaultStatus, req.StartTime, req.EndTime).
		Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *TaskRepository) Get(ctx context.Context, projectID, taskID int64) (*domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM project_tasks WHERE project_id = $1 AND task_id = $2;`
	return r.one(ctx, q, projectID, taskID)
}

// GetForUpdate is Get with the row locked for the rest of the transaction.
func (r *TaskRepository) GetForUpdate(ctx context.Context, projectID, taskID int64) (*domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM project_tasks WHERE project_id = $1 AND task_id = $2 FOR UPDATE;`
	return r.one(ctx, q, projectID, taskID)
}

// First returns the project's task with the lowest id.
func (r *TaskRepository) First(ctx context.Context, projectID int64) (*domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM project_tasks WHERE project_id = $1 ORDER BY task_id LIMIT 1;`
	return r.one(ctx, q, projectID)
}

// Update writes every mutable column of t in one statement.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	const q = `
UPDATE project_tasks
SET task_description = $3, status = $4, start_time = $5, end_time = $6
WHERE project_id = $1 AND task_id = $2;
`
	result, err := r.db.ExecContext(ctx, q, t.ProjectID, t.ID, t.Description, t.Status, t.StartTime, t.EndTime)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) one(ctx context.Context, q string, args ...any) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRowContext(ctx, q, args...).
		Scan(&t.ID, &t.ProjectID, &t.UserID, &t.Description, &t.Status, &t.StartTime, &t.EndTime, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
