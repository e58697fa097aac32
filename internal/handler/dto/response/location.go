package response

import (
	"encoding/json"
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	Latitude       *float64          `json:"latitude"`
	Longitude      *float64          `json:"longitude"`
	TotalSpots     int               `json:"totalSpots"`
	AvailableSpots int               `json:"availableSpots"`
	OccupiedSpots  int               `json:"occupiedSpots"`
	OccupancyRate  int               `json:"occupancyRate"`
	HourlyRate     RateRangeResponse `json:"hourlyRate"`
	DistanceKm     *float64          `json:"distanceKm,omitempty"`
	GeoJSON        json.RawMessage   `json:"geoJson,omitempty"`
	IsActive       bool              `json:"isActive"`
	Spots          []*SpotResponse   `json:"spots"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type RateRangeResponse struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

func FromLocationView(rm *queries.LocationView) *LocationResponse {
	return &LocationResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		Address:        rm.Address,
		City:           rm.City,
		Latitude:       rm.Latitude,
		Longitude:      rm.Longitude,
		TotalSpots:     rm.TotalSpots,
		AvailableSpots: rm.AvailableSpots,
		OccupiedSpots:  rm.OccupiedSpots,
		OccupancyRate:  rm.OccupancyRate,
		HourlyRate: RateRangeResponse{
			Min:      rm.HourlyRate.Min,
			Max:      rm.HourlyRate.Max,
			Currency: rm.HourlyRate.Currency,
		},
		DistanceKm: rm.DistanceKm,
		GeoJSON:    rm.GeoJSON,
		IsActive:   rm.IsActive,
		Spots:      FromSpotViews(rm.Spots),
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromLocationViews(rms []*queries.LocationView) []*LocationResponse {
	responses := make([]*LocationResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromLocationView(rm)
	}
	return responses
}
