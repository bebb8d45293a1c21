package http

import "github.com/gin-gonic/gin"

// Register mounts the public account routes. loginGuards run before /verify-user.
func (h *Handler) Register(rg gin.IRouter, loginGuards ...gin.HandlerFunc) {
	rg.POST("/add-user", h.AddUser)
	rg.POST("/verify-user", append(loginGuards, h.VerifyUser)...)
}
