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

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(dbtx db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: dbtx}
}

const locationColumns = `
	id, name, address, city, latitude, longitude, total_spots, geo_json, is_active, created_at, updated_at`

func (r *LocationReadStore) FindAllActive(ctx context.Context) ([]*queries.LocationRecord, error) {
	query := `SELECT` + locationColumns + `
		FROM parking_locations
		WHERE is_active
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query locations", err)
	}
	defer rows.Close()

	var records []*queries.LocationRecord
	byID := make(map[uuid.UUID]*queries.LocationRecord)
	for rows.Next() {
		rec, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		byID[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read locations", err)
	}

	if err := r.attachSpots(ctx, byID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LocationRecord, error) {
	query := `SELECT` + locationColumns + `
		FROM parking_locations
		WHERE id = $1 AND is_active`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query location", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to read location", err)
		}
		return nil, infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	rec, err := scanLocation(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.attachSpots(ctx, map[uuid.UUID]*queries.LocationRecord{rec.ID: rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

type locationScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row locationScanner) (*queries.LocationRecord, error) {
	var rec queries.LocationRecord
	var lat, lon pgtype.Numeric
	var geoJSON []byte
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Address, &rec.City, &lat, &lon,
		&rec.TotalSpots, &geoJSON, &rec.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan location", err)
	}

	if rec.Latitude, err = pgconv.Float64PtrFromNumeric(lat); err != nil {
		return nil, infra.WrapRepoErr("invalid latitude value", err)
	}
	if rec.Longitude, err = pgconv.Float64PtrFromNumeric(lon); err != nil {
		return nil, infra.WrapRepoErr("invalid longitude value", err)
	}
	rec.GeoJSON = geoJSON
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rec.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	rec.Spots = []*queries.SpotView{}
	return &rec, nil
}

func (r *LocationReadStore) attachSpots(ctx context.Context, byID map[uuid.UUID]*queries.LocationRecord) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query := `SELECT` + spotColumns + `
		FROM parking_spots
		WHERE location_id = ANY($1) AND is_active
		ORDER BY location_id, spot_number`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query location spots", err)
	}
	defer rows.Close()

	for rows.Next() {
		view, err := scanSpot(rows)
		if err != nil {
			return err
		}
		if rec, ok := byID[view.LocationID]; ok {
			rec.Spots = append(rec.Spots, view)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read location spots", err)
	}
	return nil
}
