package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/domain"
)

type EntryRepository struct {
	db postgres.DBTX
}

func NewEntryRepository(db postgres.DBTX) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) WithTx(tx postgres.DBTX) *EntryRepository {
	return &EntryRepository{db: tx}
}

// CreateForProject logs an entry with no task.
func (r *EntryRepository) CreateForProject(ctx context.Context, userID int64, req domain.LogRequest) (int64, error) {
	const q = `
INSERT INTO time_entries (project_id, user_id, start_time, end_time, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING entry_id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q, req.ProjectID, userID, req.StartTime, req.EndTime, req.Description).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateForTask logs an entry against a task. The insert only happens when
// the task belongs to the project; otherwise domain.ErrTaskMismatch.
func (r *EntryRepository) CreateForTask(ctx context.Context, userID int64, req domain.LogRequest) (int64, error) {
	const q = `
INSERT INTO time_entries (project_id, task_id, user_id, start_time, end_time, description)
SELECT t.project_id, t.task_id, $3, $4, $5, $6
FROM project_tasks t
WHERE t.task_id = $2 AND t.project_id = $1
RETURNING entry_id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q, req.ProjectID, req.TaskID, userID, req.StartTime, req.EndTime, req.Description).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrTaskMismatch
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
