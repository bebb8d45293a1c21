package domain

import (
	"fmt"
	"math"

	projectdomain "github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
)

// TotalTimeField is the synthetic column attached to every summarised project.
const TotalTimeField = "Total time spent"

// Summary is a project with the hours logged against it.
type Summary struct {
	Project    projectdomain.Project
	TotalHours float64
}

func (s Summary) TotalTimeSpent() string {
	return FormatDuration(s.TotalHours)
}

// FormatDuration renders fractional hours as "<H> hours <M> minutes".
// Negative totals are treated as their absolute value; minutes are rounded
// and a rounded 60 carries into the hour.
func FormatDuration(totalHours float64) string {
	t := math.Abs(totalHours)
	hours := math.Floor(t)
	minutes := math.Round((t - hours) * 60)
	if minutes >= 60 {
		hours++
		minutes -= 60
	}
	return fmt.Sprintf("%d hours %d minutes", int64(hours), int64(minutes))
}
