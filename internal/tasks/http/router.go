package http

import "github.com/gin-gonic/gin"

// Register attaches task routes to an authenticated router group.
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/create-project-task", h.create)
	rg.GET("/get-project/:project_id/tasks", h.first)
	rg.GET("/get-project/:project_id/tasks/:task_id", h.get)
	rg.PUT("/get-project/:project_id/tasks/:task_id", h.update)
}
