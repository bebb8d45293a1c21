package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

func (h *Handler) logProject(c *gin.Context) {
	const op = "log_project_time"
	userID, ok := auth.UserID(c)
	if !ok {
		respond.Error(c, op, apperr.ErrNoToken)
		return
	}

	var req projectEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, op, respond.BindError(err))
		return
	}

	lr, err := logRequest(req.ProjectID, 0, req.StartTime, req.EndTime, req.Description)
	if err != nil {
		respond.Error(c, op, err)
		return
	}

	id, err := h.entries.LogForProject(c.Request.Context(), userID, lr)
	if err != nil {
		respond.Error(c, op, err)
		return
	}

	respond.OK(c, gin.H{"message": "Time Entry Logged Successfully!", "entry_id": id})
}

func (h *Handler) logTask(c *gin.Context) {
	const op = "log_task_time"
	userID, ok := auth.UserID(c)
	if !ok {
		respond.Error(c, op, apperr.ErrNoToken)
		return
	}

	var req taskEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, op, respond.BindError(err))
		return
	}

	lr, err := logRequest(req.ProjectID, req.TaskID, req.StartTime, req.EndTime, req.Description)
	if err != nil {
		respond.Error(c, op, err)
		return
	}

	id, err := h.entries.LogForTask(c.Request.Context(), userID, lr)
	if err != nil {
		respond.Error(c, op, err)
		return
	}

	respond.OK(c, gin.H{"message": "Time Entry Logged Successfully!", "entry_id": id})
}

func logRequest(projectID, taskID int64, rawStart, rawEnd, description string) (domain.LogRequest, error) {
	start, err := timefmt.ParseField("start_time", rawStart)
	if err != nil {
		return domain.LogRequest{}, err
	}
	end, err := timefmt.ParseField("end_time", rawEnd)
	if err != nil {
		return domain.LogRequest{}, err
	}
	return domain.LogRequest{
		ProjectID:   projectID,
		TaskID:      taskID,
		StartTime:   start,
		EndTime:     end,
		Description: description,
	}, nil
}
