package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SpotView struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	SpotNumber string    `json:"spot_number"`
	Status     string    `json:"status"`
	HourlyRate float64   `json:"hourly_rate"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RateRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// LocationRecord is the raw read-store row for a location and its active
// spots, before availability is derived.
type LocationRecord struct {
	ID         uuid.UUID
	Name       string
	Address    string
	City       string
	Latitude   *float64
	Longitude  *float64
	TotalSpots int
	GeoJSON    json.RawMessage
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Spots      []*SpotView
}

type LocationView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	TotalSpots     int             `json:"total_spots"`
	GeoJSON        json.RawMessage `json:"geo_json,omitempty"`
	AvailableSpots int             `json:"available_spots"`
	OccupiedSpots  int             `json:"occupied_spots"`
	OccupancyRate  int             `json:"occupancy_rate"`
	HourlyRate     RateRange       `json:"hourly_rate"`
	DistanceKm     *float64        `json:"distance_km,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Spots          []*SpotView     `json:"spots"`
}

type LocationSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
}

type BookingSpotView struct {
	ID         uuid.UUID       `json:"id"`
	SpotNumber string          `json:"spot_number"`
	Status     string          `json:"status"`
	HourlyRate float64         `json:"hourly_rate"`
	Location   LocationSummary `json:"location"`
}

type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	SpotID        uuid.UUID       `json:"spot_id"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	DurationHours float64         `json:"duration_hours"`
	TotalAmount   float64         `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	BookingStatus string          `json:"booking_status"`
	VehicleNumber *string         `json:"vehicle_number,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Spot          BookingSpotView `json:"spot"`
}
