package commands

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

type ExpiryCommands interface {
	// ExpireOverdueBookings transitions up to batchSize active bookings past
	// their end time to expired and frees their spots. It returns the number
	// of bookings it transitioned; a short count means the backlog is drained.
	ExpireOverdueBookings(ctx context.Context, batchSize int) (int, error)
}

type expiryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExpiryUseCase(uow shared.UnitOfWork, clk clock.Clock) ExpiryCommands {
	return &expiryUseCaseImpl{uow: uow, clock: clk}
}

func (u *expiryUseCaseImpl) ExpireOverdueBookings(ctx context.Context, batchSize int) (int, error) {
	expired := 0
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The unit of work may re-run this closure after a serialization
		// failure; only the final attempt's rows count.
		expired = 0
		rows, err := tx.Bookings().FindExpiredForUpdate(ctx, tx.DB(), u.clock.Now(), batchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, row := range rows {
			if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), row.ID, booking.StatusExpired, row.PaymentStatus); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := tx.Spots().UpdateStatus(ctx, tx.DB(), row.SpotID, spot.StatusAvailable); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}
