package scheduler

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/config"
)

// Refresher reloads the statistics dataset.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	cfg       config.RefreshConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
func NewScheduler(cfg config.RefreshConfig, refresher Refresher, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:      c,
		refresher: refresher,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Start registers the refresh job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule), zap.String("timezone", s.cfg.Timezone))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.refreshDataset); err != nil {
		return fmt.Errorf("schedule dataset refresh %q: %w", s.cfg.CronSchedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Next reports when the refresh job fires next; zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) refreshDataset() {
	s.logger.Info("scheduled dataset refresh")
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	if err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Error("scheduled refresh failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled refresh completed")
}
