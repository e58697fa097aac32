package writerepo

import (
	"context"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, user_id, spot_id, start_time, end_time, duration_hours,
			total_amount_cents, payment_method, payment_status, booking_status, vehicle_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.SpotID(), b.StartTime(), b.EndTime(), b.Duration().Hours(),
		b.TotalAmount().Cents(), b.PaymentMethod().String(), b.PaymentStatus().String(),
		b.Status().String(), pgconv.TextFromStringPtr(b.VehicleNumber().Ptr()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, kindForPgError(err))
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id, userID uuid.UUID) (*shared.BookingRow, error) {
	const query = `
		SELECT id, user_id, spot_id, booking_status, payment_status, end_time
		FROM bookings
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`

	var row shared.BookingRow
	var status, paymentStatus string

	err := dbtx.QueryRow(ctx, query, id, userID).Scan(
		&row.ID, &row.UserID, &row.SpotID, &status, &paymentStatus, &row.EndTime,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err, kindForPgError(err))
	}

	row.Status = booking.Status(status)
	row.PaymentStatus = booking.PaymentStatus(paymentStatus)
	return &row, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus) error {
	const query = `
		UPDATE bookings
		SET booking_status = $2, payment_status = $3, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String(), paymentStatus.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, kindForPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// SKIP LOCKED keeps concurrent sweepers from serializing on the same batch.
func (r *BookingRepository) FindExpiredForUpdate(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]*shared.BookingRow, error) {
	const query = `
		SELECT id, user_id, spot_id, booking_status, payment_status, end_time
		FROM bookings
		WHERE booking_status = 'active' AND end_time <= $1
		ORDER BY end_time
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	rows, err := dbtx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock expired bookings", err, kindForPgError(err))
	}
	defer rows.Close()

	var result []*shared.BookingRow
	for rows.Next() {
		var row shared.BookingRow
		var status, paymentStatus string
		if err := rows.Scan(&row.ID, &row.UserID, &row.SpotID, &status, &paymentStatus, &row.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking", err)
		}
		row.Status = booking.Status(status)
		row.PaymentStatus = booking.PaymentStatus(paymentStatus)
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired bookings", err)
	}
	return result, nil
}
