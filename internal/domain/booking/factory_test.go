//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDuration(t *testing.T, hours float64) booking.Duration {
	t.Helper()
	d, err := booking.NewDuration(hours)
	require.NoError(t, err)
	return d
}

func mustPaymentMethod(t *testing.T, v string) booking.PaymentMethod {
	t.Helper()
	p, err := booking.NewPaymentMethod(v)
	require.NoError(t, err)
	return p
}

func TestFactoryCreateBooking(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now))
	userID, spotID := uuid.New(), uuid.New()

	t.Run("derives schedule and amount", func(t *testing.T) {
		vehicle := "ABC-123"
		vn, err := booking.NewVehicleNumber(&vehicle)
		require.NoError(t, err)

		b := factory.CreateBooking(userID, spotID, 500, mustDuration(t, 2), mustPaymentMethod(t, "card"), vn)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, spotID, b.SpotID())
		assert.Equal(t, now, b.StartTime())
		assert.Equal(t, now.Add(2*time.Hour), b.EndTime())
		assert.Equal(t, int64(1000), b.TotalAmount().Cents())
		assert.Equal(t, 10.00, b.TotalAmount().Amount())
		assert.Equal(t, booking.StatusActive, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.Equal(t, "ABC-123", b.VehicleNumber().String())
	})

	t.Run("rounds fractional-hour amounts to cents", func(t *testing.T) {
		// 3.33/hour for 1.5h = 4.995, rounds to 5.00
		b := factory.CreateBooking(userID, spotID, 333, mustDuration(t, 1.5), mustPaymentMethod(t, "cash"), booking.VehicleNumber{})
		assert.Equal(t, int64(500), b.TotalAmount().Cents())
	})

	t.Run("half-hour minimum duration", func(t *testing.T) {
		b := factory.CreateBooking(userID, spotID, 500, mustDuration(t, 0.5), mustPaymentMethod(t, "card"), booking.VehicleNumber{})
		assert.Equal(t, now.Add(30*time.Minute), b.EndTime())
		assert.Equal(t, int64(250), b.TotalAmount().Cents())
	})

	t.Run("cash bookings start with payment pending too", func(t *testing.T) {
		b := factory.CreateBooking(userID, spotID, 500, mustDuration(t, 1), mustPaymentMethod(t, "cash"), booking.VehicleNumber{})
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
	})
}

func TestBookingHasExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now))
	b := factory.CreateBooking(uuid.New(), uuid.New(), 500, mustDuration(t, 1), mustPaymentMethod(t, "card"), booking.VehicleNumber{})

	assert.False(t, b.HasExpired(now))
	assert.False(t, b.HasExpired(now.Add(time.Hour)))
	assert.True(t, b.HasExpired(now.Add(time.Hour+time.Second)))
}
