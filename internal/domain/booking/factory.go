package booking

import (
	"math"

	"parkspot/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking derives the scheduling fields for a new reservation:
// startTime is now, endTime honors fractional hours, and the total amount is
// hourlyRate x duration rounded to cents. The booking starts active with
// payment pending regardless of method; settlement happens elsewhere.
func (f *Factory) CreateBooking(
	userID, spotID uuid.UUID,
	hourlyRateCents int64,
	duration Duration,
	paymentMethod PaymentMethod,
	vehicleNumber VehicleNumber,
) *Booking {
	startTime := f.Clock.Now()
	endTime := startTime.Add(duration.AsTimeDuration())
	totalCents := int64(math.Round(float64(hourlyRateCents) * duration.Hours()))

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		spotID:        spotID,
		startTime:     startTime,
		endTime:       endTime,
		duration:      duration,
		totalAmount:   NewMoney(totalCents),
		paymentMethod: paymentMethod,
		paymentStatus: PaymentPending,
		status:        StatusActive,
		vehicleNumber: vehicleNumber,
	}
}
