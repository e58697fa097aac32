package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotResponse struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"locationId"`
	SpotNumber string    `json:"spotNumber"`
	Status     string    `json:"status"`
	HourlyRate float64   `json:"hourlyRate"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type SpotDetailResponse struct {
	SpotResponse
	Location LocationSummaryResponse `json:"location"`
}

func FromSpotView(rm *queries.SpotView) *SpotResponse {
	return &SpotResponse{
		ID:         rm.ID,
		LocationID: rm.LocationID,
		SpotNumber: rm.SpotNumber,
		Status:     rm.Status,
		HourlyRate: rm.HourlyRate,
		IsActive:   rm.IsActive,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromSpotViews(rms []*queries.SpotView) []*SpotResponse {
	responses := make([]*SpotResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromSpotView(rm)
	}
	return responses
}

func FromSpotWithLocation(rm *queries.SpotWithLocation) *SpotDetailResponse {
	return &SpotDetailResponse{
		SpotResponse: *FromSpotView(&rm.SpotView),
		Location: LocationSummaryResponse{
			ID:      rm.Location.ID,
			Name:    rm.Location.Name,
			Address: rm.Location.Address,
			City:    rm.Location.City,
		},
	}
}
