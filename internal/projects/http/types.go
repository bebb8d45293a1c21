package http

import (
	"context"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

type ProjectManager interface {
	Create(ctx context.Context, ownerID int64, req domain.CreateRequest) (int64, error)
	Get(ctx context.Context, projectID int64) (*domain.Project, error)
	Delete(ctx context.Context, requesterID, projectID int64) error
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	projects ProjectManager
}

func New(projects ProjectManager) *Handler {
	return &Handler{projects: projects}
}

type createReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=active completed archived"`
}

type deleteReq struct {
	ProjectID int64 `json:"project_id" binding:"required,gt=0"`
}

type ProjectResponse struct {
	ProjectID   int64  `json:"project_id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   timefmt.Format(p.CreatedAt),
		UpdatedAt:   timefmt.Format(p.UpdatedAt),
	}
}
