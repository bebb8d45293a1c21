package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
)

const projectColumns = `project_id, user_id, name, description, status, created_at, updated_at`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db postgres.DBTX
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db postgres.DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a repository whose statements run on tx.
func (r *ProjectRepository) WithTx(tx postgres.DBTX) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// Create inserts a new project for the given user.
func (r *ProjectRepository) Create(ctx context.Context, ownerID int64, req domain.CreateRequest) (int64, error) {
	const q = `
INSERT INTO projects (user_id, name, description, status)
VALUES ($1, $2, $3, $4)
RETURNING project_id;
`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, ownerID, req.Name, req.Description, string(req.Status)).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every project ordered by id.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects ORDER BY project_id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// OwnerForUpdate returns the owner of a project and locks its row until the
// surrounding transaction ends.
func (r *ProjectRepository) OwnerForUpdate(ctx context.Context, id int64) (int64, error) {
	const q = `SELECT user_id FROM projects WHERE project_id = $1 FOR UPDATE;`

	var owner int64
	err := r.db.QueryRowContext(ctx, q, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return owner, nil
}

// Delete removes a project. Tasks and time entries go with it (ON DELETE CASCADE).
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM projects WHERE project_id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p      domain.Project
		status string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.Status(status)
	return &p, nil
}
