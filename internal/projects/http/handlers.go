package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respond.Error(c, "create_project", apperr.ErrNoToken)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, "create_project", respond.BindError(err))
		return
	}

	id, err := h.projects.Create(c.Request.Context(), userID, domain.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.Status(req.Status),
	})
	if err != nil {
		respond.Error(c, "create_project", err)
		return
	}

	respond.OK(c, gin.H{"message": "Project Created Successfully!", "project_id": id})
}

func (h *Handler) get(c *gin.Context) {
	projectID, err := respond.PathID(c, "project_id")
	if err != nil {
		respond.Error(c, "get_project", err)
		return
	}

	p, err := h.projects.Get(c.Request.Context(), projectID)
	if err != nil {
		respond.Error(c, "get_project", err)
		return
	}

	respond.OK(c, gin.H{"project": toResponse(p)})
}

// delete reads project_id from the query string, falling back to the JSON body.
func (h *Handler) delete(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		respond.Error(c, "delete_project", apperr.ErrNoToken)
		return
	}

	var projectID int64
	if raw := c.Query("project_id"); raw != "" {
		id, err := respond.ParseID(raw)
		if err != nil {
			respond.Error(c, "delete_project", apperr.Validation("project_id must be a positive integer"))
			return
		}
		projectID = id
	} else {
		var req deleteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, "delete_project", respond.BindError(err))
			return
		}
		projectID = req.ProjectID
	}

	if err := h.projects.Delete(c.Request.Context(), userID, projectID); err != nil {
		respond.Error(c, "delete_project", err)
		return
	}

	respond.OK(c, gin.H{"message": "Project Deleted Successfully!", "project_id": projectID})
}
