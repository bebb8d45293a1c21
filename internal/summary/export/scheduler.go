package export

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const DefaultSpec = "0 0 0 * * *"

type Scheduler struct {
	cron     *cron.Cron
	exporter *Exporter
	timeout  time.Duration
}

// NewScheduler registers the export job. spec uses the six-field form with seconds.
func NewScheduler(exporter *Exporter, spec string, timeout time.Duration) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		exporter: exporter,
		timeout:  timeout,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("schedule summary export %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("Summary export scheduler started")
}

// Stop halts the schedule and waits for a running export to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	path, err := s.exporter.Export(ctx)
	if err != nil {
		log.Printf("Summary export failed: %v", err)
		return
	}
	log.Printf("Summary export written to %s", path)
}
