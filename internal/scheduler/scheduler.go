package scheduler

import (
	"context"
	"fmt"
	"time"

	"animal-rescue/internal/domain/reports"
	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/platform/metrics"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 30 * time.Second

// StatusCounter es lo único que el job necesita del servicio de reportes.
type StatusCounter interface {
	StatusCounts(ctx context.Context) (map[reports.Status]int, error)
}

// StatusGauge recalcula periódicamente animal_rescue_reports_by_status.
type StatusGauge struct {
	cron    *cron.Cron
	spec    string
	counter StatusCounter
	metrics *metrics.Metrics
	log     logger.Logger
}

func NewStatusGauge(counter StatusCounter, m *metrics.Metrics, spec string, log logger.Logger) *StatusGauge {
	if log == nil {
		log = logger.Nop()
	}
	return &StatusGauge{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		spec:    spec,
		counter: counter,
		metrics: m,
		log:     log,
	}
}

// Start registra el job, hace una primera pasada y arranca el cron.
func (s *StatusGauge) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := s.Refresh(jobCtx); err != nil {
			s.log.Error("status gauge refresh failed", map[string]any{"error": err.Error()})
		}
	}); err != nil {
		return fmt.Errorf("schedule status gauge %q: %w", s.spec, err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.log.Warn("initial status gauge refresh failed", map[string]any{"error": err.Error()})
	}

	s.cron.Start()
	s.log.Info("status gauge scheduler started", map[string]any{"spec": s.spec})
	return nil
}

// Refresh cuenta reportes por estado y publica el gauge.
func (s *StatusGauge) Refresh(ctx context.Context) error {
	counts, err := s.counter.StatusCounts(ctx)
	if err != nil {
		return err
	}

	byStatus := make(map[string]int, len(counts))
	for st, n := range counts {
		byStatus[string(st)] = n
	}
	s.metrics.SetReportsByStatus(byStatus)

	s.log.Debug("status gauge refreshed", map[string]any{"counts": byStatus})
	return nil
}

// Stop espera a que termine el job en curso.
func (s *StatusGauge) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("status gauge scheduler stopped", nil)
}
