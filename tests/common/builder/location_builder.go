//go:build unit || e2e

package builder

import (
	"time"

	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationBuilder struct {
	ID         uuid.UUID
	Name       string
	Address    string
	City       string
	Latitude   *float64
	Longitude  *float64
	TotalSpots int
	Spots      []*queries.SpotView
	CreatedAt  time.Time
}

func NewLocationBuilder() *LocationBuilder {
	lat, lon := 33.3152, 44.3661
	return &LocationBuilder{
		ID:         uuid.New(),
		Name:       "Central Garage",
		Address:    "1 Main St",
		City:       "Springfield",
		Latitude:   &lat,
		Longitude:  &lon,
		TotalSpots: 10,
		CreatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) WithSpot(spotNumber, status string, rateCents int64) *LocationBuilder {
	b.Spots = append(b.Spots, &queries.SpotView{
		ID:         uuid.New(),
		LocationID: b.ID,
		SpotNumber: spotNumber,
		Status:     status,
		HourlyRate: float64(rateCents) / 100,
		IsActive:   true,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	})
	return b
}

func (b *LocationBuilder) BuildRecord() *queries.LocationRecord {
	spots := b.Spots
	if spots == nil {
		spots = []*queries.SpotView{}
	}
	return &queries.LocationRecord{
		ID:         b.ID,
		Name:       b.Name,
		Address:    b.Address,
		City:       b.City,
		Latitude:   b.Latitude,
		Longitude:  b.Longitude,
		TotalSpots: b.TotalSpots,
		IsActive:   true,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
		Spots:      spots,
	}
}

func (b *LocationBuilder) BuildView() *queries.LocationView {
	spots := b.Spots
	if spots == nil {
		spots = []*queries.SpotView{}
	}
	available := 0
	rates := queries.RateRange{Currency: "USD"}
	for _, sp := range spots {
		if sp.Status == "available" {
			available++
		}
		if rates.Min == 0 || sp.HourlyRate < rates.Min {
			rates.Min = sp.HourlyRate
		}
		if sp.HourlyRate > rates.Max {
			rates.Max = sp.HourlyRate
		}
	}
	occupied := b.TotalSpots - available
	rate := 0
	if b.TotalSpots > 0 {
		rate = occupied * 100 / b.TotalSpots
	}
	return &queries.LocationView{
		ID:             b.ID,
		Name:           b.Name,
		Address:        b.Address,
		City:           b.City,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		TotalSpots:     b.TotalSpots,
		AvailableSpots: available,
		OccupiedSpots:  occupied,
		OccupancyRate:  rate,
		HourlyRate:     rates,
		IsActive:       true,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
		Spots:          spots,
	}
}

func (b *LocationBuilder) BuildCreateRequestDTO() reqdto.CreateLocationRequest {
	return reqdto.CreateLocationRequest{
		Name:       b.Name,
		Address:    b.Address,
		City:       b.City,
		Latitude:   b.Latitude,
		Longitude:  b.Longitude,
		TotalSpots: b.TotalSpots,
	}
}
