package commands

import (
	"context"
	"fmt"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpotNotFound            = errs.New("parking spot not found")
	ErrSpotNotAvailable        = errs.New("parking spot is not available")
	ErrSpotContended           = errs.New("parking spot is being booked by another request")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingAlreadyCompleted = errs.New("booking is already completed")
	ErrBookingNotCancellable   = errs.New("booking cannot be cancelled")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SpotUnavailableError reports the observed spot state so the caller can
// surface it in the conflict response.
type SpotUnavailableError struct {
	SpotStatus spot.Status
}

func (e *SpotUnavailableError) Error() string {
	return fmt.Sprintf("parking spot is %s", e.SpotStatus)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	CompleteBooking(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingFactory *booking.Factory
	bookingQueries queries.BookingQueries
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingFactory: bookingFactory,
		bookingQueries: bookingQueries,
	}
}

// CreateBooking reserves a spot for the user. The spot row is locked for the
// whole transaction, so concurrent requests for the same spot serialize: the
// first one flips it to occupied, the rest observe the new status and fail
// with a conflict. A request that waits past the lock timeout fails the same
// way without holding up the connection.
func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	duration, err := req.Duration()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	paymentMethod, err := booking.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	vehicleNumber, err := booking.NewVehicleNumber(req.VehicleNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		spotRow, err := tx.Spots().FindForUpdate(ctx, tx.DB(), req.LocationID, req.GetSpotNumber())
		if err != nil {
			return markSpotLockErr(err)
		}
		if !spotRow.Status.IsReservable() {
			return errs.Mark(&SpotUnavailableError{SpotStatus: spotRow.Status}, ErrSpotNotAvailable)
		}

		newBooking := u.bookingFactory.CreateBooking(
			userID, spotRow.ID, spotRow.HourlyRateCents, duration, paymentMethod, vehicleNumber,
		)

		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), newBooking)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Spots().UpdateStatus(ctx, tx.DB(), spotRow.ID, spot.StatusOccupied); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.fetchView(ctx, bookingID, userID)
}

// CompleteBooking finishes a booking and settles its payment. Only an already
// completed booking is rejected; completing a cancelled or expired booking is
// allowed so an operator can close out stale records. The spot is released
// unconditionally.
func (u *bookingUseCaseImpl) CompleteBooking(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id, userID)
		if err != nil {
			return markBookingLockErr(err)
		}
		if !row.Status.CanComplete() {
			return ErrBookingAlreadyCompleted
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, booking.StatusCompleted, booking.PaymentCompleted); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Spots().UpdateStatus(ctx, tx.DB(), row.SpotID, spot.StatusAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.fetchView(ctx, id, userID)
}

// CancelBooking voids an active or expired booking and frees its spot. The
// payment status is left as recorded; refunds are out of band.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id, userID)
		if err != nil {
			return markBookingLockErr(err)
		}
		if !row.Status.CanCancel() {
			return ErrBookingNotCancellable
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, booking.StatusCancelled, row.PaymentStatus); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Spots().UpdateStatus(ctx, tx.DB(), row.SpotID, spot.StatusAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.fetchView(ctx, id, userID)
}

func (u *bookingUseCaseImpl) fetchView(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
	view, err := u.bookingQueries.GetByID(ctx, id, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch booking after write")
	}
	return view, nil
}

func markSpotLockErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrSpotNotFound)
	case infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(err, ErrSpotContended)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func markBookingLockErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBookingNotFound)
	case infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(err, ErrSpotContended)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
