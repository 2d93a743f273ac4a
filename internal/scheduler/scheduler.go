package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weathergate/internal/service"
)

// Scheduler refreshes current conditions for the configured locations
// on a cron schedule so the observations snapshot stays warm.
type Scheduler struct {
	weather  *service.Weather
	cron     *cron.Cron
	schedule string
	queries  []string
	timeout  time.Duration
	logger   *zap.Logger
}

func New(weather *service.Weather, queries []string, schedule string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		weather:  weather,
		cron:     cron.New(),
		schedule: schedule,
		queries:  queries,
		timeout:  60 * time.Second,
		logger:   logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.refresh); err != nil {
		return err
	}
	s.cron.Start()

	s.logger.Info("Scheduler started",
		zap.String("schedule", s.schedule),
		zap.Strings("locations", s.queries))

	// Warm the snapshot immediately rather than waiting for the first
	// tick.
	go s.refresh()
	return nil
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.weather.Refresh(ctx, s.queries); err != nil {
		s.logger.Error("Scheduled refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	s.logger.Info("Scheduled refresh completed",
		zap.Duration("duration", time.Since(start)))
}

// Stop halts the cron loop and waits for an in-flight refresh to
// finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}
