// Package timefmt holds the single timestamp layout used in API responses and
// the parsers accepted for request bodies.
package timefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
)

// Layout renders as YYYY-MM-DD HH:mm:ss.
const Layout = "2006-01-02 15:04:05"

// Format renders t in server local time. The zero time renders as "".
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(Layout)
}

// Parse accepts RFC 3339 or Layout (interpreted in local time).
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: want RFC 3339 or %q", s, Layout)
	}
	return t, nil
}

// ValidateRange requires start to be strictly before end.
func ValidateRange(start, end time.Time) error {
	if !start.Before(end) {
		return apperr.Validation("start_time must be before end_time")
	}
	return nil
}

// ParseField parses a request timestamp, reporting failures against the field name.
func ParseField(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, apperr.Validation("%s is required", field)
	}
	t, err := Parse(raw)
	if err != nil {
		return time.Time{}, apperr.Validation("%s is not a valid timestamp (use RFC 3339 or %s)", field, Layout)
	}
	return t, nil
}
