package writerepo

import (
	"context"

	"parkspot/internal/domain/location"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LocationRepository struct{}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{}
}

func (r *LocationRepository) Create(ctx context.Context, dbtx db.DBTX, l *location.Location) (uuid.UUID, error) {
	const query = `
		INSERT INTO parking_locations (id, name, address, city, latitude, longitude, total_spots, geo_json, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var geoJSON any
	if len(l.GeoJSON()) > 0 {
		geoJSON = []byte(l.GeoJSON())
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		l.ID(), l.Name(), l.Address(), l.City(),
		pgconv.NumericFromFloat64Ptr(l.Latitude()), pgconv.NumericFromFloat64Ptr(l.Longitude()),
		l.TotalSpots(), geoJSON, l.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create parking location", err, kindForPgError(err))
	}
	return id, nil
}
