package shared

import (
	"context"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/location"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Spots() SpotRepository
	Bookings() BookingRepository
	Locations() LocationRepository
	DB() db.DBTX
}

// SpotRow is the locked snapshot of a spot inside a reservation transaction.
type SpotRow struct {
	ID              uuid.UUID
	LocationID      uuid.UUID
	SpotNumber      string
	Status          spot.Status
	HourlyRateCents int64
}

// BookingRow is the locked snapshot of a booking inside a transition
// transaction.
type BookingRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SpotID        uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	EndTime       time.Time
}

type SpotRepository interface {
	// FindForUpdate acquires an exclusive row lock on the active spot
	// identified by (locationID, spotNumber), blocking until the competing
	// transaction resolves or the lock timeout fires.
	FindForUpdate(ctx context.Context, db db.DBTX, locationID uuid.UUID, spotNumber string) (*SpotRow, error)
	FindByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*SpotRow, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status spot.Status) error
	Create(ctx context.Context, db db.DBTX, s *spot.Spot) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindForUpdate locks the booking scoped to (id, userID); the ownership
	// check is part of the lookup, so a foreign booking reads as absent.
	FindForUpdate(ctx context.Context, db db.DBTX, id, userID uuid.UUID) (*BookingRow, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus) error
	// FindExpiredForUpdate locks up to limit active bookings past their end
	// time, skipping rows held by concurrent transactions.
	FindExpiredForUpdate(ctx context.Context, db db.DBTX, now time.Time, limit int) ([]*BookingRow, error)
}

type LocationRepository interface {
	Create(ctx context.Context, db db.DBTX, l *location.Location) (uuid.UUID, error)
}
