package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/credentials"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
)

type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AuthService struct {
	users UserStore
	creds credentials.Issuer
}

func NewAuthService(users UserStore, creds credentials.Issuer) *AuthService {
	return &AuthService{users: users, creds: creds}
}

// Register hashes the password and stores the user. A taken email is a Conflict
// carrying the database's detail line.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return 0, apperr.Validation("name, email and password are required")
	}

	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return 0, apperr.Wrap(apperr.KindConflict, "Could not add user! "+postgres.ErrorDetail(err), err)
		}
		return 0, apperr.Internal(err)
	}

	logging.New(ctx).Infof("register", "user_id=%d", id)
	return id, nil
}

// Login returns a fresh token for the user with the given id.
func (s *AuthService) Login(ctx context.Context, userID int64, password string) (string, error) {
	if userID <= 0 || password == "" {
		return "", apperr.Validation("ID or Password is Missing!")
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", apperr.NotFound("No user found with ID %d!", userID)
	}
	if err != nil {
		return "", apperr.Internal(err)
	}

	if !s.creds.VerifyPassword(password, user.PasswordHash) {
		logging.New(ctx).Warnf("login", "user_id=%d bad password", userID)
		return "", apperr.ErrBadCredentials
	}

	token, err := s.creds.IssueToken(user.ID)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}
