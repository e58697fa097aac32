package queries

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrInvalidStatusFilter = errs.New("invalid booking status filter")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status *booking.Status) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, userID uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, statusFilter *string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, statusFilter *string) ([]*BookingView, error) {
	var status *booking.Status
	if statusFilter != nil && *statusFilter != "" {
		s := booking.Status(*statusFilter)
		if !s.IsValid() {
			return nil, ErrInvalidStatusFilter
		}
		status = &s
	}

	views, err := q.store.FindByUser(ctx, userID, status)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return views, nil
}
