package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
)

type UserRepository struct {
	db postgres.DBTX
}

func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and returns its generated id. A duplicate email
// surfaces as the driver's unique violation; see postgres.IsUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING user_id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, name, strings.ToLower(email), passwordHash).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a user including the password hash.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, created_at
		FROM users
		WHERE user_id = $1
	`

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
