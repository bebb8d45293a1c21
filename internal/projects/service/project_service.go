package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/projects/repository"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	db   *sql.DB
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{
		db:   db,
		repo: repository.NewProjectRepository(db),
	}
}

// Create creates a new project owned by ownerID.
func (s *ProjectService) Create(ctx context.Context, ownerID int64, req domain.CreateRequest) (int64, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Status = domain.Status(strings.TrimSpace(string(req.Status)))

	if ownerID <= 0 {
		return 0, apperr.ErrNoToken
	}
	if req.Name == "" || req.Description == "" || req.Status == "" {
		return 0, apperr.Validation("name, description and status are required")
	}
	if !req.Status.Valid() {
		return 0, apperr.Validation("status must be one of: active, completed, archived")
	}

	id, err := s.repo.Create(ctx, ownerID, req)
	if err != nil {
		return 0, apperr.Internal(err)
	}

	logging.New(ctx).Infof("create_project", "project_id=%d user_id=%d", id, ownerID)
	return id, nil
}

func (s *ProjectService) Get(ctx context.Context, projectID int64) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// Delete removes a project owned by requesterID together with its tasks and entries.
func (s *ProjectService) Delete(ctx context.Context, requesterID, projectID int64) error {
	err := postgres.WithTx(ctx, s.db, func(tx postgres.DBTX) error {
		if err := s.CanAccessProject(ctx, tx, requesterID, projectID); err != nil {
			return err
		}
		ok, err := s.repo.WithTx(tx).Delete(ctx, projectID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return domain.ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Classify(err)
	}

	logging.New(ctx).Infof("delete_project", "project_id=%d user_id=%d", projectID, requesterID)
	return nil
}

// CanAccessProject is the ownership check for every mutation under a project.
// It locks the project row on q, so callers pass their open transaction.
func (s *ProjectService) CanAccessProject(ctx context.Context, q postgres.DBTX, userID, projectID int64) error {
	owner, err := s.repo.WithTx(q).OwnerForUpdate(ctx, projectID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrProjectNotFound
	}
	if err != nil {
		return apperr.Internal(err)
	}
	if owner != userID {
		return domain.ErrNotProjectOwner
	}
	return nil
}
