package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/repository"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

type AccessGuard interface {
	CanAccessProject(ctx context.Context, q postgres.DBTX, userID, projectID int64) error
}

type EntryService struct {
	db     *sql.DB
	repo   *repository.EntryRepository
	access AccessGuard
}

func NewEntryService(db *sql.DB, access AccessGuard) *EntryService {
	return &EntryService{
		db:     db,
		repo:   repository.NewEntryRepository(db),
		access: access,
	}
}

// LogForProject records time against a project the requester owns.
func (s *EntryService) LogForProject(ctx context.Context, requesterID int64, req domain.LogRequest) (int64, error) {
	req.TaskID = 0
	return s.log(ctx, "log_project_time", requesterID, req, func(r *repository.EntryRepository, req domain.LogRequest) (int64, error) {
		return r.CreateForProject(ctx, requesterID, req)
	})
}

// LogForTask records time against a task; the task must belong to the project.
func (s *EntryService) LogForTask(ctx context.Context, requesterID int64, req domain.LogRequest) (int64, error) {
	if req.TaskID <= 0 {
		return 0, apperr.Validation("task_id is required")
	}
	return s.log(ctx, "log_task_time", requesterID, req, func(r *repository.EntryRepository, req domain.LogRequest) (int64, error) {
		id, err := r.CreateForTask(ctx, requesterID, req)
		if errors.Is(err, domain.ErrTaskMismatch) {
			return 0, domain.ErrTaskNotInProject
		}
		return id, err
	})
}

func (s *EntryService) log(ctx context.Context, op string, requesterID int64, req domain.LogRequest, insert func(*repository.EntryRepository, domain.LogRequest) (int64, error)) (int64, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.ProjectID <= 0 {
		return 0, apperr.Validation("project_id is required")
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
		id, err = insert(s.repo.WithTx(tx), req)
		return err
	})
	if err != nil {
		return 0, apperr.Classify(err)
	}

	logging.New(ctx).Infof(op, "entry_id=%d project_id=%d task_id=%d", id, req.ProjectID, req.TaskID)
	return id, nil
}
