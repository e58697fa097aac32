package location

import (
	"encoding/json"
	"errors"
	"strings"

	"parkspot/internal/domain/geo"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("location name must not be empty")
	ErrEmptyAddress       = errors.New("location address must not be empty")
	ErrEmptyCity          = errors.New("location city must not be empty")
	ErrNegativeTotalSpots = errors.New("total spots cannot be negative")
	ErrInvalidCoordinates = errors.New("invalid location coordinates")
)

// Location is a parking site. totalSpots is the configured capacity, a hint
// used for occupancy reporting; it is not reconciled against the live spot
// count. The geofence payload is opaque to the core.
type Location struct {
	id         uuid.UUID
	name       string
	address    string
	city       string
	latitude   *float64
	longitude  *float64
	totalSpots int
	geoJSON    json.RawMessage
	active     bool
}

func NewLocation(name, address, city string, latitude, longitude *float64, totalSpots int, geoJSON json.RawMessage) (*Location, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)

	if name == "" {
		return nil, ErrEmptyName
	}
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if city == "" {
		return nil, ErrEmptyCity
	}
	if totalSpots < 0 {
		return nil, ErrNegativeTotalSpots
	}
	if (latitude == nil) != (longitude == nil) {
		return nil, ErrInvalidCoordinates
	}
	if latitude != nil && !geo.IsValidCoordinates(*latitude, *longitude) {
		return nil, ErrInvalidCoordinates
	}

	return &Location{
		id:         uuid.New(),
		name:       name,
		address:    address,
		city:       city,
		latitude:   latitude,
		longitude:  longitude,
		totalSpots: totalSpots,
		geoJSON:    geoJSON,
		active:     true,
	}, nil
}

func (l *Location) ID() uuid.UUID            { return l.id }
func (l *Location) Name() string             { return l.name }
func (l *Location) Address() string          { return l.address }
func (l *Location) City() string             { return l.city }
func (l *Location) Latitude() *float64       { return l.latitude }
func (l *Location) Longitude() *float64      { return l.longitude }
func (l *Location) TotalSpots() int          { return l.totalSpots }
func (l *Location) GeoJSON() json.RawMessage { return l.geoJSON }
func (l *Location) IsActive() bool           { return l.active }
