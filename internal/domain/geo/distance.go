package geo

import (
	"errors"
	"math"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("radius must be between 0 and 100 km")
)

const (
	earthRadiusKm = 6371

	MaxRadiusKm = 100
)

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the half-angle haversine form.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func IsValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 &&
		longitude >= -180 && longitude <= 180
}

func ValidateCoordinates(latitude, longitude float64) error {
	if !IsValidCoordinates(latitude, longitude) {
		return ErrInvalidCoordinates
	}
	return nil
}

func ValidateRadiusKm(radius float64) error {
	if math.IsNaN(radius) || radius <= 0 || radius > MaxRadiusKm {
		return ErrInvalidRadius
	}
	return nil
}

// RoundKm rounds a distance to two decimal places for display.
func RoundKm(distance float64) float64 {
	return math.Round(distance*100) / 100
}
