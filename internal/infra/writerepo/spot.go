package writerepo

import (
	"context"

	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotRepository struct{}

func NewSpotRepository() *SpotRepository {
	return &SpotRepository{}
}

func (r *SpotRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, locationID uuid.UUID, spotNumber string) (*shared.SpotRow, error) {
	const query = `
		SELECT id, location_id, spot_number, status, hourly_rate_cents
		FROM parking_spots
		WHERE location_id = $1 AND spot_number = $2 AND is_active
		FOR UPDATE`

	return r.scanRowForUpdate(ctx, dbtx, query, locationID, spotNumber)
}

func (r *SpotRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.SpotRow, error) {
	const query = `
		SELECT id, location_id, spot_number, status, hourly_rate_cents
		FROM parking_spots
		WHERE id = $1 AND is_active
		FOR UPDATE`

	return r.scanRowForUpdate(ctx, dbtx, query, id)
}

func (r *SpotRepository) scanRowForUpdate(ctx context.Context, dbtx db.DBTX, query string, args ...any) (*shared.SpotRow, error) {
	var row shared.SpotRow
	var status string

	err := dbtx.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.LocationID, &row.SpotNumber, &status, &row.HourlyRateCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock parking spot", err, kindForPgError(err))
	}

	row.Status = spot.Status(status)
	return &row, nil
}

func (r *SpotRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status spot.Status) error {
	const query = `
		UPDATE parking_spots
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update spot status", err, kindForPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Create(ctx context.Context, dbtx db.DBTX, s *spot.Spot) (uuid.UUID, error) {
	const query = `
		INSERT INTO parking_spots (id, location_id, spot_number, status, hourly_rate_cents, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		s.ID(), s.LocationID(), s.SpotNumber(), s.Status().String(), s.HourlyRateCents(), s.IsActive(),
	).Scan(&id)
	if err != nil {
		kind := kindForPgError(err)
		if kind == infra.KindDuplicateKey {
			return uuid.Nil, infra.WrapRepoErr("spot number already exists at location", err, kind)
		}
		if kind == infra.KindForeignKeyViolated {
			return uuid.Nil, infra.WrapRepoErr("parking location not found", err, kind)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create parking spot", err, kind)
	}
	return id, nil
}
