package request

import (
	"strings"

	"parkspot/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LocationID    uuid.UUID `json:"location_id" binding:"required"`
	SpotNumber    string    `json:"spot_number" binding:"required,max=20"`
	DurationHours float64   `json:"duration_hours" binding:"required,gte=0.5,lte=24"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=card cash mastercard visa zaincash"`
	VehicleNumber *string   `json:"vehicle_number,omitempty" binding:"omitempty,max=20"`
}

func (r CreateBookingRequest) GetSpotNumber() string {
	return strings.TrimSpace(r.SpotNumber)
}

func (r CreateBookingRequest) Duration() (booking.Duration, error) {
	return booking.NewDuration(r.DurationHours)
}

type ListBookingsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=active completed cancelled expired"`
}
