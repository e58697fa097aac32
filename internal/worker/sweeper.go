package worker

import (
	"context"
	"log/slog"
	"time"

	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/commands"
)

// ExpirySweeper periodically transitions overdue bookings to expired and
// releases their spots. Locked rows are skipped, so multiple instances can
// run the sweep concurrently without stepping on each other.
type ExpirySweeper struct {
	expiryCommands commands.ExpiryCommands
	cfg            config.SweepConfig
	done           chan struct{}
	stopped        chan struct{}
}

func NewExpirySweeper(expiryCommands commands.ExpiryCommands, cfg config.Config) *ExpirySweeper {
	return &ExpirySweeper{
		expiryCommands: expiryCommands,
		cfg:            cfg.Sweep,
		done:           make(chan struct{}),
		stopped:        make(chan struct{}),
	}
}

func (s *ExpirySweeper) Start() {
	if !s.cfg.Enabled {
		slog.Info("booking expiry sweeper disabled")
		close(s.stopped)
		return
	}

	slog.Info("booking expiry sweeper started",
		"interval", s.cfg.Interval.String(),
		"batch_size", s.cfg.BatchSize)

	go s.run()
}

func (s *ExpirySweeper) Stop(ctx context.Context) error {
	close(s.done)
	select {
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ExpirySweeper) run() {
	defer close(s.stopped)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			slog.Info("booking expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep drains the overdue backlog in batches so a large pile-up cannot hold
// one transaction open for long.
func (s *ExpirySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Interval)
	defer cancel()

	total := 0
	for {
		expired, err := s.expiryCommands.ExpireOverdueBookings(ctx, s.cfg.BatchSize)
		if err != nil {
			slog.Error("booking expiry sweep failed", "error", err.Error(), "expired_so_far", total)
			return
		}
		total += expired
		if expired < s.cfg.BatchSize {
			break
		}
	}

	if total > 0 {
		slog.Info("booking expiry sweep completed", "expired", total)
	}
}
