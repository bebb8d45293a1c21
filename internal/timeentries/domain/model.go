package domain

import (
	"errors"
	"time"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
)

// LogRequest is one append-only entry to record. TaskID is zero for entries
// logged against the project as a whole.
type LogRequest struct {
	ProjectID   int64
	TaskID      int64
	StartTime   time.Time
	EndTime     time.Time
	Description string
}

// ErrTaskMismatch means the task does not exist under the given project.
var ErrTaskMismatch = errors.New("task does not belong to project")

var ErrTaskNotInProject = apperr.New(apperr.KindNotFound, "Task not found for this project!")
