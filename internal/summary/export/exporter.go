// Package export writes the all-projects summary to disk on a cron schedule.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/domain"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/summary/service"
)

type Source interface {
	AllSummaries(ctx context.Context) ([]domain.Summary, error)
}

type Exporter struct {
	source Source
	dir    string
	now    func() time.Time
}

func NewExporter(source Source, dir string) *Exporter {
	return &Exporter{source: source, dir: dir, now: time.Now}
}

// Export writes projects-summary-YYYYMMDD.csv into the export directory and
// returns its path. The file is written to a temp name and renamed into place.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	sums, err := e.source.AllSummaries(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("projects-summary-%s.csv", e.now().Format("20060102"))
	path := filepath.Join(e.dir, name)

	tmp, err := os.CreateTemp(e.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := service.WriteCSV(tmp, sums); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("publish export file: %w", err)
	}
	return path, nil
}
