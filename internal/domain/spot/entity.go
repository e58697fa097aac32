package spot

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptySpotNumber   = errors.New("spot number must not be empty")
	ErrSpotNumberTooLong = errors.New("spot number must not exceed 20 characters")
	ErrNegativeRate      = errors.New("hourly rate cannot be negative")
	ErrInvalidStatus     = errors.New("invalid spot status")
)

const MaxSpotNumberLength = 20

// DefaultHourlyRateCents is applied when provisioning does not set a rate.
const DefaultHourlyRateCents int64 = 500

type Spot struct {
	id              uuid.UUID
	locationID      uuid.UUID
	spotNumber      string
	status          Status
	hourlyRateCents int64
	active          bool
}

// NewSpot provisions a spot in the available state. (locationID, spotNumber)
// uniqueness is enforced by the registry, not here.
func NewSpot(locationID uuid.UUID, spotNumber string, hourlyRateCents int64) (*Spot, error) {
	spotNumber = strings.TrimSpace(spotNumber)
	if spotNumber == "" {
		return nil, ErrEmptySpotNumber
	}
	if len(spotNumber) > MaxSpotNumberLength {
		return nil, ErrSpotNumberTooLong
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	if hourlyRateCents == 0 {
		hourlyRateCents = DefaultHourlyRateCents
	}

	return &Spot{
		id:              uuid.New(),
		locationID:      locationID,
		spotNumber:      spotNumber,
		status:          StatusAvailable,
		hourlyRateCents: hourlyRateCents,
		active:          true,
	}, nil
}

func (s *Spot) ID() uuid.UUID          { return s.id }
func (s *Spot) LocationID() uuid.UUID  { return s.locationID }
func (s *Spot) SpotNumber() string     { return s.spotNumber }
func (s *Spot) Status() Status         { return s.status }
func (s *Spot) HourlyRateCents() int64 { return s.hourlyRateCents }
func (s *Spot) IsActive() bool         { return s.active }
