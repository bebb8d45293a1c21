package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

func (h *Handler) create(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respond.Error(c, "create_task", apperr.ErrNoToken)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, "create_task", respond.BindError(err))
		return
	}

	start, err := timefmt.ParseField("start_time", req.StartTime)
	if err != nil {
		respond.Error(c, "create_task", err)
		return
	}
	end, err := timefmt.ParseField("end_time", req.EndTime)
	if err != nil {
		respond.Error(c, "create_task", err)
		return
	}

	id, err := h.tasks.Create(c.Request.Context(), userID, domain.CreateRequest{
		ProjectID:   req.ProjectID,
		Description: req.TaskDescription,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		respond.Error(c, "create_task", err)
		return
	}

	respond.OK(c, gin.H{"message": "Task Created Successfully!", "task_id": id})
}

func (h *Handler) first(c *gin.Context) {
	projectID, err := respond.PathID(c, "project_id")
	if err != nil {
		respond.Error(c, "get_tasks", err)
		return
	}

	t, err := h.tasks.First(c.Request.Context(), projectID)
	if err != nil {
		respond.Error(c, "get_tasks", err)
		return
	}

	respond.OK(c, gin.H{"task": toResponse(t)})
}

func (h *Handler) get(c *gin.Context) {
	projectID, taskID, err := pathIDs(c)
	if err != nil {
		respond.Error(c, "get_task", err)
		return
	}

	t, err := h.tasks.Get(c.Request.Context(), projectID, taskID)
	if err != nil {
		respond.Error(c, "get_task", err)
		return
	}

	respond.OK(c, gin.H{"task": toResponse(t)})
}

func (h *Handler) update(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respond.Error(c, "update_task", apperr.ErrNoToken)
		return
	}

	projectID, taskID, err := pathIDs(c)
	if err != nil {
		respond.Error(c, "update_task", err)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, "update_task", respond.BindError(err))
		return
	}

	upd := domain.UpdateRequest{Description: req.TaskDescription, Status: req.Status}
	if upd.StartTime, err = optionalTime("start_time", req.StartTime); err != nil {
		respond.Error(c, "update_task", err)
		return
	}
	if upd.EndTime, err = optionalTime("end_time", req.EndTime); err != nil {
		respond.Error(c, "update_task", err)
		return
	}

	t, err := h.tasks.Update(c.Request.Context(), userID, projectID, taskID, upd)
	if err != nil {
		respond.Error(c, "update_task", err)
		return
	}

	respond.OK(c, gin.H{"message": "Task Updated Successfully!", "task": toResponse(t)})
}

func pathIDs(c *gin.Context) (projectID, taskID int64, err error) {
	if projectID, err = respond.PathID(c, "project_id"); err != nil {
		return 0, 0, err
	}
	if taskID, err = respond.PathID(c, "task_id"); err != nil {
		return 0, 0, err
	}
	return projectID, taskID, nil
}

func optionalTime(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := timefmt.ParseField(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
