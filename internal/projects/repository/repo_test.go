package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
)

var projectCols = []string{"project_id", "user_id", "name", "description", "status", "created_at", "updated_at"}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects (user_id, name, description, status)")).
		WithArgs(int64(1), "Site", "Landing page", "active").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(int64(10)))

	id, err := repo.Create(ctx, 1, domain.CreateRequest{Name: "Site", Description: "Landing page", Status: domain.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE project_id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow(int64(10), int64(1), "Site", "Landing page", "active", now, now))

	p, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.Equal(t, int64(1), p.UserID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE project_id = $1")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(projectCols))

	_, err = repo.GetByID(ctx, 11)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM projects ORDER BY project_id")).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(int64(1), int64(1), "A", "a", "active", now, now).
			AddRow(int64(2), int64(2), "B", "b", "archived", now, now))

	items, err := NewProjectRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.StatusArchived, items[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_OwnerForUpdateAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM projects WHERE project_id = $1 FOR UPDATE")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(3)))

	owner, err := repo.OwnerForUpdate(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), owner)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err = repo.OwnerForUpdate(ctx, 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE project_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
