package queries

import (
	"context"
	"math"
	"sort"

	"parkspot/internal/domain/geo"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLocationNotFound = errs.New("parking location not found")

const DefaultSearchRadiusKm = 10.0

type LocationReadStore interface {
	FindAllActive(ctx context.Context) ([]*LocationRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LocationRecord, error)
}

type LocationQueries interface {
	List(ctx context.Context) ([]*LocationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*LocationView, error)
}

type locationQueriesImpl struct {
	store LocationReadStore
}

func NewLocationQueries(store LocationReadStore) LocationQueries {
	return &locationQueriesImpl{store: store}
}

func (q *locationQueriesImpl) List(ctx context.Context) ([]*LocationView, error) {
	records, err := q.store.FindAllActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list locations")
	}

	views := make([]*LocationView, len(records))
	for i, rec := range records {
		views[i] = buildLocationView(rec)
	}
	return views, nil
}

func (q *locationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, errs.Wrap(err, "failed to find location")
	}
	return buildLocationView(rec), nil
}

// Nearby returns active locations within radiusKm of the query point,
// distance-annotated and nearest first. Locations without coordinates are
// excluded.
func (q *locationQueriesImpl) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*LocationView, error) {
	if err := geo.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if err := geo.ValidateRadiusKm(radiusKm); err != nil {
		return nil, err
	}

	records, err := q.store.FindAllActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list locations for nearby search")
	}

	views := make([]*LocationView, 0, len(records))
	for _, rec := range records {
		if rec.Latitude == nil || rec.Longitude == nil {
			continue
		}
		view := buildLocationView(rec)
		distance := geo.RoundKm(geo.DistanceKm(latitude, longitude, *rec.Latitude, *rec.Longitude))
		view.DistanceKm = &distance
		if distance <= radiusKm {
			views = append(views, view)
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		return *views[i].DistanceKm < *views[j].DistanceKm
	})

	return views, nil
}

// buildLocationView derives the availability summary. occupiedSpots comes
// from the configured capacity, not the live spot count; a stale totalSpots
// therefore skews occupancy. Kept to match the provisioning contract.
func buildLocationView(rec *LocationRecord) *LocationView {
	available := 0
	for _, s := range rec.Spots {
		if s.Status == spot.StatusAvailable.String() {
			available++
		}
	}

	occupied := rec.TotalSpots - available
	occupancyRate := 0
	if rec.TotalSpots > 0 {
		occupancyRate = int(math.Round(float64(occupied) / float64(rec.TotalSpots) * 100))
	}

	minRate, maxRate := rateRange(rec.Spots)

	spots := rec.Spots
	if spots == nil {
		spots = []*SpotView{}
	}

	return &LocationView{
		ID:             rec.ID,
		Name:           rec.Name,
		Address:        rec.Address,
		City:           rec.City,
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
		TotalSpots:     rec.TotalSpots,
		GeoJSON:        rec.GeoJSON,
		AvailableSpots: available,
		OccupiedSpots:  occupied,
		OccupancyRate:  occupancyRate,
		HourlyRate:     RateRange{Min: minRate, Max: maxRate, Currency: "USD"},
		IsActive:       rec.IsActive,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		Spots:          spots,
	}
}

func rateRange(spots []*SpotView) (minRate, maxRate float64) {
	if len(spots) == 0 {
		return 0, 0
	}
	minRate, maxRate = spots[0].HourlyRate, spots[0].HourlyRate
	for _, s := range spots[1:] {
		if s.HourlyRate < minRate {
			minRate = s.HourlyRate
		}
		if s.HourlyRate > maxRate {
			maxRate = s.HourlyRate
		}
	}
	return minRate, maxRate
}
