package readstore

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingSelect = `
	SELECT
		b.id, b.user_id, b.spot_id, b.start_time, b.end_time, b.duration_hours,
		b.total_amount_cents, b.payment_method, b.payment_status, b.booking_status,
		b.vehicle_number, b.created_at, b.updated_at,
		s.spot_number, s.status, s.hourly_rate_cents,
		l.id, l.name, l.address, l.city
	FROM bookings b
	JOIN parking_spots s ON s.id = b.spot_id
	JOIN parking_locations l ON l.id = s.location_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
	query := bookingSelect + `
	WHERE b.id = $1 AND b.user_id = $2`

	view, err := scanBooking(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID, status *booking.Status) ([]*queries.BookingView, error) {
	query := bookingSelect + `
	WHERE b.user_id = $1 AND ($2::text IS NULL OR b.booking_status = $2)
	ORDER BY b.created_at DESC`

	var statusArg *string
	if status != nil {
		s := status.String()
		statusArg = &s
	}

	rows, err := r.db.Query(ctx, query, userID, statusArg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user bookings", err)
	}
	return views, nil
}

type bookingScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingScanner) (*queries.BookingView, error) {
	var view queries.BookingView
	var totalCents, rateCents int64
	var vehicleNumber pgtype.Text
	var startTime, endTime, createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.UserID, &view.SpotID, &startTime, &endTime, &view.DurationHours,
		&totalCents, &view.PaymentMethod, &view.PaymentStatus, &view.BookingStatus,
		&vehicleNumber, &createdAt, &updatedAt,
		&view.Spot.SpotNumber, &view.Spot.Status, &rateCents,
		&view.Spot.Location.ID, &view.Spot.Location.Name, &view.Spot.Location.Address, &view.Spot.Location.City,
	)
	if err != nil {
		return nil, err
	}

	view.Spot.ID = view.SpotID
	view.TotalAmount = float64(totalCents) / 100
	view.Spot.HourlyRate = float64(rateCents) / 100
	view.VehicleNumber = pgconv.StringPtrFromPgtype(vehicleNumber)
	view.StartTime = pgconv.TimeFromPgtype(startTime)
	view.EndTime = pgconv.TimeFromPgtype(endTime)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
