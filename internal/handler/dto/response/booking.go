package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"userId"`
	SpotID        uuid.UUID           `json:"spotId"`
	StartTime     time.Time           `json:"startTime"`
	EndTime       time.Time           `json:"endTime"`
	DurationHours float64             `json:"durationHours"`
	TotalAmount   float64             `json:"totalAmount"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	BookingStatus string              `json:"bookingStatus"`
	VehicleNumber *string             `json:"vehicleNumber,omitempty"`
	Spot          BookingSpotResponse `json:"spot"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type BookingSpotResponse struct {
	ID         uuid.UUID               `json:"id"`
	SpotNumber string                  `json:"spotNumber"`
	Status     string                  `json:"status"`
	HourlyRate float64                 `json:"hourlyRate"`
	Location   LocationSummaryResponse `json:"location"`
}

type LocationSummaryResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID,
		UserID:        rm.UserID,
		SpotID:        rm.SpotID,
		StartTime:     rm.StartTime,
		EndTime:       rm.EndTime,
		DurationHours: rm.DurationHours,
		TotalAmount:   rm.TotalAmount,
		PaymentMethod: rm.PaymentMethod,
		PaymentStatus: rm.PaymentStatus,
		BookingStatus: rm.BookingStatus,
		VehicleNumber: rm.VehicleNumber,
		Spot: BookingSpotResponse{
			ID:         rm.Spot.ID,
			SpotNumber: rm.Spot.SpotNumber,
			Status:     rm.Spot.Status,
			HourlyRate: rm.Spot.HourlyRate,
			Location: LocationSummaryResponse{
				ID:      rm.Spot.Location.ID,
				Name:    rm.Spot.Location.Name,
				Address: rm.Spot.Location.Address,
				City:    rm.Spot.Location.City,
			},
		},
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromBookingView(rm)
	}
	return responses
}
