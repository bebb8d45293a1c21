package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/domain"
)

// AddUser registers a new account.
func (h *Handler) AddUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, "add_user", respond.BindError(err))
		return
	}

	id, err := h.authService.Register(c.Request.Context(), domain.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(c, "add_user", err)
		return
	}

	respond.OK(c, gin.H{"message": "User Added Successfully!!", "user_id": id})
}

// VerifyUser checks the password for a user id and returns a bearer token.
func (h *Handler) VerifyUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, "verify_user", respond.BindError(err))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		respond.Error(c, "verify_user", err)
		return
	}

	respond.OK(c, gin.H{"message": "Successfully Verified User!", "token": token})
}
