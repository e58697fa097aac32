//go:build unit

package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkspot/internal/pkg/config"
	commandsmock "parkspot/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweeper(t *testing.T, cfg config.SweepConfig) (*ExpirySweeper, *commandsmock.MockExpiryCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	expiry := commandsmock.NewMockExpiryCommands(ctrl)
	return NewExpirySweeper(expiry, config.Config{Sweep: cfg}), expiry
}

func TestSweepDrainsBacklogInBatches(t *testing.T) {
	s, expiry := newSweeper(t, config.SweepConfig{
		Interval:  time.Minute,
		BatchSize: 100,
		Enabled:   true,
	})

	// Two full batches and a partial one end the drain loop.
	gomock.InOrder(
		expiry.EXPECT().ExpireOverdueBookings(gomock.Any(), 100).Return(100, nil),
		expiry.EXPECT().ExpireOverdueBookings(gomock.Any(), 100).Return(100, nil),
		expiry.EXPECT().ExpireOverdueBookings(gomock.Any(), 100).Return(37, nil),
	)

	s.sweep()
}

func TestSweepStopsOnError(t *testing.T) {
	s, expiry := newSweeper(t, config.SweepConfig{
		Interval:  time.Minute,
		BatchSize: 100,
		Enabled:   true,
	})

	expiry.EXPECT().ExpireOverdueBookings(gomock.Any(), 100).
		Return(0, errors.New("database error")).Times(1)

	s.sweep()
}

func TestSweeperLifecycle(t *testing.T) {
	t.Run("disabled sweeper stops immediately", func(t *testing.T) {
		s, _ := newSweeper(t, config.SweepConfig{
			Interval:  time.Minute,
			BatchSize: 100,
			Enabled:   false,
		})

		s.Start()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
	})

	t.Run("running sweeper sweeps on each tick and shuts down", func(t *testing.T) {
		s, expiry := newSweeper(t, config.SweepConfig{
			Interval:  5 * time.Millisecond,
			BatchSize: 100,
			Enabled:   true,
		})

		swept := make(chan struct{})
		expiry.EXPECT().ExpireOverdueBookings(gomock.Any(), 100).
			DoAndReturn(func(context.Context, int) (int, error) {
				select {
				case swept <- struct{}{}:
				default:
				}
				return 0, nil
			}).MinTimes(1)

		s.Start()

		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("sweeper never ticked")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, s.Stop(ctx))
	})
}
