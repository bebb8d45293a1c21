package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/timefmt"
)

var csvHeader = []string{
	"project_id", "user_id", "name", "description", "status", "created_at", "updated_at", domain.TotalTimeField,
}

// WriteCSV renders one row per summary after the header.
func WriteCSV(w io.Writer, summaries []domain.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range summaries {
		p := s.Project
		row := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.UserID, 10),
			p.Name,
			p.Description,
			string(p.Status),
			timefmt.Format(p.CreatedAt),
			timefmt.Format(p.UpdatedAt),
			s.TotalTimeSpent(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
