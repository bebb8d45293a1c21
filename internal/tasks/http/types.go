package http

import (
	"context"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

type TaskManager interface {
	Create(ctx context.Context, requesterID int64, req domain.CreateRequest) (int64, error)
	Get(ctx context.Context, projectID, taskID int64) (*domain.Task, error)
	First(ctx context.Context, projectID int64) (*domain.Task, error)
	Update(ctx context.Context, requesterID, projectID, taskID int64, upd domain.UpdateRequest) (*domain.Task, error)
}

type Handler struct {
	tasks TaskManager
}

func New(tasks TaskManager) *Handler {
	return &Handler{tasks: tasks}
}

type createReq struct {
	ProjectID       int64  `json:"project_id" binding:"required,gt=0"`
	TaskDescription string `json:"task_description" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
}

type updateReq struct {
	TaskDescription *string `json:"task_description"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Status          *string `json:"status"`
}

type TaskResponse struct {
	TaskID          int64  `json:"task_id"`
	ProjectID       int64  `json:"project_id"`
	UserID          int64  `json:"user_id"`
	TaskDescription string `json:"task_description"`
	Status          string `json:"status"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	CreatedAt       string `json:"created_at"`
}

func toResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:          t.ID,
		ProjectID:       t.ProjectID,
		UserID:          t.UserID,
		TaskDescription: t.Description,
		Status:          t.Status,
		StartTime:       timefmt.Format(t.StartTime),
		EndTime:         timefmt.Format(t.EndTime),
		CreatedAt:       timefmt.Format(t.CreatedAt),
	}
}
