package readstore

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpotReadStore struct {
	db db.DBTX
}

func NewSpotReadStore(dbtx db.DBTX) *SpotReadStore {
	return &SpotReadStore{db: dbtx}
}

const spotColumns = `
	id, location_id, spot_number, status, hourly_rate_cents, is_active, created_at, updated_at`

func (r *SpotReadStore) FindAvailableByLocation(ctx context.Context, locationID uuid.UUID) ([]*queries.SpotView, error) {
	query := `SELECT` + spotColumns + `
		FROM parking_spots
		WHERE location_id = $1 AND status = 'available' AND is_active
		ORDER BY spot_number`

	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available spots", err)
	}
	defer rows.Close()

	spots := []*queries.SpotView{}
	for rows.Next() {
		view, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		spots = append(spots, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read available spots", err)
	}
	return spots, nil
}

func (r *SpotReadStore) FindByNumber(ctx context.Context, locationID uuid.UUID, spotNumber string) (*queries.SpotWithLocation, error) {
	query := `SELECT
			s.id, s.location_id, s.spot_number, s.status, s.hourly_rate_cents,
			s.is_active, s.created_at, s.updated_at,
			l.id, l.name, l.address, l.city
		FROM parking_spots s
		JOIN parking_locations l ON l.id = s.location_id
		WHERE s.location_id = $1 AND s.spot_number = $2 AND s.is_active`

	row := r.db.QueryRow(ctx, query, locationID, spotNumber)

	var result queries.SpotWithLocation
	var rateCents int64
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(
		&result.ID, &result.LocationID, &result.SpotNumber, &result.Status, &rateCents,
		&result.IsActive, &createdAt, &updatedAt,
		&result.Location.ID, &result.Location.Name, &result.Location.Address, &result.Location.City,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query spot", err)
	}
	result.HourlyRate = float64(rateCents) / 100
	result.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	result.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &result, nil
}

func (r *SpotReadStore) LocationExists(ctx context.Context, locationID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM parking_locations WHERE id = $1 AND is_active)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, locationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check location existence", err)
	}
	return exists, nil
}

type spotScanner interface {
	Scan(dest ...any) error
}

func scanSpot(row spotScanner) (*queries.SpotView, error) {
	var view queries.SpotView
	var rateCents int64
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.LocationID, &view.SpotNumber, &view.Status, &rateCents,
		&view.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan spot", err)
	}
	view.HourlyRate = float64(rateCents) / 100
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
