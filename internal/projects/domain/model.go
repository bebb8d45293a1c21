package domain

import (
	"errors"
	"time"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Project is a unit of billable work owned by exactly one user.
type Project struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateRequest struct {
	Name        string
	Description string
	Status      Status
}

// ErrNotFound is returned by the repository; managers translate it.
var ErrNotFound = errors.New("project not found")

var (
	ErrProjectNotFound = apperr.New(apperr.KindNotFound, "Project not found!")
	ErrNotProjectOwner = apperr.New(apperr.KindForbidden, "You are not the owner of this project!")
)
