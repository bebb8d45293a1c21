package http

import (
	"context"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/domain"
)

type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, userID int64, password string) (string, error)
}

type Handler struct {
	authService Authenticator
}

func New(authService Authenticator) *Handler {
	return &Handler{
		authService: authService,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

// Missing fields are reported by the service with a single message.
type loginRequest struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}
