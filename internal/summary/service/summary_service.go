package service

import (
	"context"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	projectdomain "github.com/Dipanshu0612/Time-Tracker-API/internal/projects/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/domain"
)

// ProjectReader is the read side of the project manager.
type ProjectReader interface {
	Get(ctx context.Context, projectID int64) (*projectdomain.Project, error)
	List(ctx context.Context) ([]projectdomain.Project, error)
}

type HoursStore interface {
	TotalHours(ctx context.Context, projectID int64) (float64, error)
	TotalHoursByProject(ctx context.Context) (map[int64]float64, error)
}

var ErrNoProjects = apperr.New(apperr.KindNotFound, "No projects found!")

type SummaryService struct {
	projects ProjectReader
	hours    HoursStore
}

func NewSummaryService(projects ProjectReader, hours HoursStore) *SummaryService {
	return &SummaryService{projects: projects, hours: hours}
}

// ProjectSummary totals the time logged against one project.
func (s *SummaryService) ProjectSummary(ctx context.Context, projectID int64) (*domain.Summary, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	total, err := s.hours.TotalHours(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &domain.Summary{Project: *p, TotalHours: total}, nil
}

// AllSummaries returns one summary per project in id order.
func (s *SummaryService) AllSummaries(ctx context.Context) ([]domain.Summary, error) {
	items, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoProjects
	}

	totals, err := s.hours.TotalHoursByProject(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]domain.Summary, 0, len(items))
	for _, p := range items {
		out = append(out, domain.Summary{Project: p, TotalHours: totals[p.ID]})
	}
	return out, nil
}
