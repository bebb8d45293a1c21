package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/repository"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

// AccessGuard decides whether a user may mutate a project. It runs on the
// caller's transaction.
type AccessGuard interface {
	CanAccessProject(ctx context.Context, q postgres.DBTX, userID, projectID int64) error
}

type TaskService struct {
	db     *sql.DB
	repo   *repository.TaskRepository
	access AccessGuard
}

func NewTaskService(db *sql.DB, access AccessGuard) *TaskService {
	return &TaskService{
		db:     db,
		repo:   repository.NewTaskRepository(db),
		access: access,
	}
}

// Create adds a task with status "Ongoing" under a project the requester owns.
func (s *TaskService) Create(ctx context.Context, requesterID int64, req domain.CreateRequest) (int64, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.ProjectID <= 0 || req.Description == "" {
		return 0, apperr.Validation("project_id and task_description are required")
	}
	if err := timefmt.ValidateRange(req.StartTime, req.EndTime); err != nil {
		return 0, err
	}

	var id int64
	err := postgres.WithTx(ctx, s.db, func(tx postgres.DBTX) error {
		if err := s.access.CanAccessProject(ctx, tx, requesterID, req.ProjectID); err != nil {
			return err
		}
		var err error
		id, err = s.repo.WithTx(tx).Create(ctx, requesterID, req)
		return err
	})
	if err != nil {
		return 0, apperr.Classify(err)
	}

	logging.New(ctx).Infof("create_task", "task_id=%d project_id=%d", id, req.ProjectID)
	return id, nil
}

func (s *TaskService) Get(ctx context.Context, projectID, taskID int64) (*domain.Task, error) {
	t, err := s.repo.Get(ctx, projectID, taskID)
	return t, translate(err)
}

// First returns the earliest-created task of the project.
func (s *TaskService) First(ctx context.Context, projectID int64) (*domain.Task, error) {
	t, err := s.repo.First(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("No tasks found for project %d!", projectID)
	}
	return t, translate(err)
}

// Update applies a partial update and re-validates the merged task before writing it.
func (s *TaskService) Update(ctx context.Context, requesterID, projectID, taskID int64, upd domain.UpdateRequest) (*domain.Task, error) {
	if upd.Empty() {
		return nil, apperr.Validation("at least one of task_description, start_time, end_time, status is required")
	}

	var task *domain.Task
	err := postgres.WithTx(ctx, s.db, func(tx postgres.DBTX) error {
		if err := s.access.CanAccessProject(ctx, tx, requesterID, projectID); err != nil {
			return err
		}

		repo := s.repo.WithTx(tx)
		t, err := repo.GetForUpdate(ctx, projectID, taskID)
		if err != nil {
			return translate(err)
		}
		if err := upd.Apply(t); err != nil {
			return err
		}
		if err := timefmt.ValidateRange(t.StartTime, t.EndTime); err != nil {
			return err
		}
		if err := repo.Update(ctx, t); err != nil {
			return translate(err)
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}

	logging.New(ctx).Infof("update_task", "task_id=%d project_id=%d", taskID, projectID)
	return task, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrTaskNotFound
	default:
		return apperr.Classify(err)
	}
}
