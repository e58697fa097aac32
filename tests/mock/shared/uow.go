//go:build unit

package sharedmock

import (
	"context"

	"parkspot/internal/infra/db"
	"parkspot/internal/usecase/shared"
)

// StubTx hands the mocked repositories to code running inside a unit of work.
type StubTx struct {
	SpotRepo     *MockSpotRepository
	BookingRepo  *MockBookingRepository
	LocationRepo *MockLocationRepository
}

func (t *StubTx) Spots() shared.SpotRepository         { return t.SpotRepo }
func (t *StubTx) Bookings() shared.BookingRepository   { return t.BookingRepo }
func (t *StubTx) Locations() shared.LocationRepository { return t.LocationRepo }
func (t *StubTx) DB() db.DBTX                          { return nil }

// StubUoW runs the transactional closure directly; commit and rollback
// behavior belong to the integration tests. Attempts greater than one
// re-runs the closure, mimicking the re-execution a real unit of work
// performs after a serialization failure.
type StubUoW struct {
	Tx       *StubTx
	Attempts int
}

func NewStubUoW(tx *StubTx) *StubUoW {
	return &StubUoW{Tx: tx}
}

func (u *StubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempts := max(u.Attempts, 1)
	var err error
	for range attempts {
		err = fn(ctx, u.Tx)
	}
	return err
}

func (u *StubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}
