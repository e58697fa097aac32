//go:build unit || e2e

package builder

import (
	"time"

	dombooking "parkspot/internal/domain/booking"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID        uuid.UUID
	SpotID        uuid.UUID
	LocationID    uuid.UUID
	SpotNumber    string
	DurationHours float64
	RateCents     int64
	PaymentMethod string
	VehicleNumber *string
	StartTime     time.Time
	Status        dombooking.Status
	PaymentStatus dombooking.PaymentStatus
}

func NewBookingBuilder() *BookingBuilder {
	vehicle := "ABC-123"
	return &BookingBuilder{
		UserID:        uuid.New(),
		SpotID:        uuid.New(),
		LocationID:    uuid.New(),
		SpotNumber:    "A-01",
		DurationHours: 2,
		RateCents:     500,
		PaymentMethod: "card",
		VehicleNumber: &vehicle,
		StartTime:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:        dombooking.StatusActive,
		PaymentStatus: dombooking.PaymentPending,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		LocationID:    b.LocationID,
		SpotNumber:    b.SpotNumber,
		DurationHours: b.DurationHours,
		PaymentMethod: b.PaymentMethod,
		VehicleNumber: b.VehicleNumber,
	}
}

func (b *BookingBuilder) BuildRow() *shared.BookingRow {
	return &shared.BookingRow{
		ID:            uuid.New(),
		UserID:        b.UserID,
		SpotID:        b.SpotID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		EndTime:       b.StartTime.Add(time.Duration(b.DurationHours * float64(time.Hour))),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	id := uuid.New()
	endTime := b.StartTime.Add(time.Duration(b.DurationHours * float64(time.Hour)))
	return &queries.BookingView{
		ID:            id,
		UserID:        b.UserID,
		SpotID:        b.SpotID,
		StartTime:     b.StartTime,
		EndTime:       endTime,
		DurationHours: b.DurationHours,
		TotalAmount:   float64(b.RateCents) * b.DurationHours / 100,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus.String(),
		BookingStatus: b.Status.String(),
		VehicleNumber: b.VehicleNumber,
		CreatedAt:     b.StartTime,
		UpdatedAt:     b.StartTime,
		Spot: queries.BookingSpotView{
			ID:         b.SpotID,
			SpotNumber: b.SpotNumber,
			Status:     "occupied",
			HourlyRate: float64(b.RateCents) / 100,
			Location: queries.LocationSummary{
				ID:      b.LocationID,
				Name:    "Central Garage",
				Address: "1 Main St",
				City:    "Springfield",
			},
		},
	}
}
