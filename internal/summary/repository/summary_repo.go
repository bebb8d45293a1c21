package repository

import (
	"context"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/storage/postgres"
)

// SummaryRepository aggregates logged time in the database.
type SummaryRepository struct {
	db postgres.DBTX
}

func NewSummaryRepository(db postgres.DBTX) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// TotalHours sums entry durations for one project. No entries yields 0.
func (r *SummaryRepository) TotalHours(ctx context.Context, projectID int64) (float64, error) {
	const q = `
SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time))), 0)::float8 / 3600
FROM time_entries
WHERE project_id = $1;
`
	var hours float64
	if err := r.db.QueryRowContext(ctx, q, projectID).Scan(&hours); err != nil {
		return 0, err
	}
	return hours, nil
}

// TotalHoursByProject returns the sum for every project, including those with no entries.
func (r *SummaryRepository) TotalHoursByProject(ctx context.Context) (map[int64]float64, error) {
	const q = `
SELECT p.project_id,
       COALESCE(SUM(EXTRACT(EPOCH FROM (e.end_time - e.start_time))), 0)::float8 / 3600
FROM projects p
LEFT JOIN time_entries e ON e.project_id = p.project_id
GROUP BY p.project_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]float64)
	for rows.Next() {
		var (
			id    int64
			hours float64
		)
		if err := rows.Scan(&id, &hours); err != nil {
			return nil, err
		}
		out[id] = hours
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
