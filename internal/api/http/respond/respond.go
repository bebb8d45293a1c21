// Package respond writes the JSON envelopes shared by every handler:
// {"ok": true, ...} on success and {"ok": false, "error": "..."} on failure.
package respond

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
)

func OK(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["ok"] = true
	c.JSON(http.StatusOK, body)
}

// Error maps err to its canonical status. Internal errors are logged and
// reported without their cause.
func Error(c *gin.Context, op string, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		logging.New(c.Request.Context()).Error(op, err)
	}
	c.JSON(status, gin.H{"ok": false, "error": apperr.Message(err)})
}

// Abort is Error for middleware.
func Abort(c *gin.Context, op string, err error) {
	Error(c, op, err)
	c.Abort()
}

// BindError turns a ShouldBindJSON failure into a validation error.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return apperr.Validation("%s", strings.Join(msgs, "; "))
	}
	if errors.Is(err, io.EOF) {
		return apperr.Validation("request body is required")
	}
	return apperr.Wrap(apperr.KindValidation, "invalid request body", err)
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// jsonName converts the struct field name to snake case, matching the dto tags.
func jsonName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(name[i-1] >= 'A' && name[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := ParseID(c.Param(name))
	if err != nil {
		return 0, apperr.Validation("%s must be a positive integer", name)
	}
	return id, nil
}

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
