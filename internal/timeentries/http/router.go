package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/project-timestamp", h.logProject)
	rg.POST("/project-task-timestamp", h.logTask)
}
