package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: "2024-03-01T10:00:00Z",
			want:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "layout in local time",
			input: "2024-03-01 10:30:00",
			want:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local),
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s want %s", got, tc.want)
		})
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)
	assert.Equal(t, "2024-03-01 09:05:07", Format(ts))
	assert.Equal(t, "", Format(time.Time{}))
}

func TestValidateRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateRange(start, start.Add(time.Minute)))

	err := ValidateRange(start, start)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "start_time must be before end_time", apperr.Message(err))

	assert.Error(t, ValidateRange(start, start.Add(-time.Hour)))
}

func TestParseField(t *testing.T) {
	_, err := ParseField("end_time", "")
	assert.Equal(t, "end_time is required", apperr.Message(err))

	_, err = ParseField("start_time", "10am")
	assert.Equal(t, "start_time is not a valid timestamp (use RFC 3339 or 2006-01-02 15:04:05)", apperr.Message(err))

	got, err := ParseField("start_time", "2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.UTC().Hour())
}
