package request

import "encoding/json"

type CreateLocationRequest struct {
	Name       string          `json:"name" binding:"required,max=255"`
	Address    string          `json:"address" binding:"required"`
	City       string          `json:"city" binding:"required,max=100"`
	Latitude   *float64        `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude  *float64        `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	TotalSpots int             `json:"total_spots" binding:"required,gt=0"`
	GeoJSON    json.RawMessage `json:"geo_json,omitempty"`
}

// NearbyLocationsQuery uses pointer fields so that zero coordinates
// (the equator, the prime meridian) survive the required check.
type NearbyLocationsQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" binding:"required,gte=-180,lte=180"`
	RadiusKm  *float64 `form:"radius" binding:"omitempty,gt=0,lte=100"`
}
