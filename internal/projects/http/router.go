package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to an authenticated router group.
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/create-project", h.create)
	rg.GET("/get-project/:project_id", h.get)
	rg.DELETE("/delete-project", h.delete)
}
