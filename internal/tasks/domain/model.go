package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
)

// DefaultStatus is assigned to every new task.
const DefaultStatus = "Ongoing"

type Task struct {
	ID          int64
	ProjectID   int64
	UserID      int64
	Description string
	Status      string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time
}

type CreateRequest struct {
	ProjectID   int64
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// UpdateRequest carries the fields of a partial update; nil means unchanged.
type UpdateRequest struct {
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Status      *string
}

func (u UpdateRequest) Empty() bool {
	return u.Description == nil && u.StartTime == nil && u.EndTime == nil && u.Status == nil
}

// Apply merges u into t and rejects blank text fields.
func (u UpdateRequest) Apply(t *Task) error {
	if u.Description != nil {
		d := strings.TrimSpace(*u.Description)
		if d == "" {
			return apperr.Validation("task_description cannot be empty")
		}
		t.Description = d
	}
	if u.Status != nil {
		s := strings.TrimSpace(*u.Status)
		if s == "" {
			return apperr.Validation("status cannot be empty")
		}
		t.Status = s
	}
	if u.StartTime != nil {
		t.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		t.EndTime = *u.EndTime
	}
	return nil
}

var ErrNotFound = errors.New("task not found")

var ErrTaskNotFound = apperr.New(apperr.KindNotFound, "Task not found!")
