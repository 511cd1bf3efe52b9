package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleEvictor removes sessions that were not touched for longer than ttl.
type IdleEvictor interface {
	EvictIdle(now time.Time, ttl time.Duration) int
}

// SessionSweeper periodically drops abandoned quiz sessions from memory.
type SessionSweeper struct {
	sessions IdleEvictor
	schedule string
	ttl      time.Duration
	logger   *zap.Logger
}

// NewSessionSweeper creates a new sweeper running on the given cron schedule.
func NewSessionSweeper(sessions IdleEvictor, schedule string, ttl time.Duration, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		schedule: schedule,
		ttl:      ttl,
		logger:   logger,
	}
}

// Start runs the sweeper until ctx is cancelled.
func (s *SessionSweeper) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		s.Sweep(time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	s.logger.Info("session sweeper started",
		zap.String("schedule", s.schedule),
		zap.Duration("idle_ttl", s.ttl),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
	return nil
}

// Sweep evicts idle sessions once.
func (s *SessionSweeper) Sweep(now time.Time) int {
	evicted := s.sessions.EvictIdle(now, s.ttl)
	if evicted > 0 {
		s.logger.Info("evicted idle quiz sessions", zap.Int("count", evicted))
	}
	return evicted
}
