package http

import (
	"context"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/domain"
)

type EntryLogger interface {
	LogForProject(ctx context.Context, requesterID int64, req domain.LogRequest) (int64, error)
	LogForTask(ctx context.Context, requesterID int64, req domain.LogRequest) (int64, error)
}

type Handler struct {
	entries EntryLogger
}

func New(entries EntryLogger) *Handler {
	return &Handler{entries: entries}
}

type projectEntryReq struct {
	ProjectID   int64  `json:"project_id" binding:"required,gt=0"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Description string `json:"description"`
}

type taskEntryReq struct {
	ProjectID   int64  `json:"project_id" binding:"required,gt=0"`
	TaskID      int64  `json:"task_id" binding:"required,gt=0"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Description string `json:"description"`
}
