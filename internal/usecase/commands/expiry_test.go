//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/shared"
	sharedmock "parkspot/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExpiryCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	spotRepo    *sharedmock.MockSpotRepository
	bookingRepo *sharedmock.MockBookingRepository
	clk         *clock.MockClock
	uow         *sharedmock.StubUoW
	uc          commands.ExpiryCommands
}

func (s *ExpiryCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.spotRepo = sharedmock.NewMockSpotRepository(s.ctrl)
	s.bookingRepo = sharedmock.NewMockBookingRepository(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.uow = sharedmock.NewStubUoW(&sharedmock.StubTx{
		SpotRepo:     s.spotRepo,
		BookingRepo:  s.bookingRepo,
		LocationRepo: sharedmock.NewMockLocationRepository(s.ctrl),
	})
	s.uc = commands.NewExpiryUseCase(s.uow, s.clk)
}

func (s *ExpiryCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExpiryCommandsSuite(t *testing.T) {
	suite.Run(t, new(ExpiryCommandsTestSuite))
}

func (s *ExpiryCommandsTestSuite) overdueRow(paymentStatus booking.PaymentStatus) *shared.BookingRow {
	return &shared.BookingRow{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		SpotID:        uuid.New(),
		Status:        booking.StatusActive,
		PaymentStatus: paymentStatus,
		EndTime:       s.clk.Now().Add(-time.Minute),
	}
}

func (s *ExpiryCommandsTestSuite) TestExpireOverdueBookings() {
	s.Run("expires each overdue booking and frees its spot", func() {
		rows := []*shared.BookingRow{
			s.overdueRow(booking.PaymentPending),
			s.overdueRow(booking.PaymentCompleted),
		}

		s.bookingRepo.EXPECT().
			FindExpiredForUpdate(gomock.Any(), gomock.Any(), s.clk.Now(), 100).
			Return(rows, nil)
		for _, row := range rows {
			s.bookingRepo.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any(), row.ID, booking.StatusExpired, row.PaymentStatus).
				Return(nil)
			s.spotRepo.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any(), row.SpotID, spot.StatusAvailable).
				Return(nil)
		}

		n, err := s.uc.ExpireOverdueBookings(context.Background(), 100)
		s.Require().NoError(err)
		s.Equal(2, n)
	})

	s.Run("reports zero when nothing is overdue", func() {
		s.bookingRepo.EXPECT().
			FindExpiredForUpdate(gomock.Any(), gomock.Any(), s.clk.Now(), 100).
			Return(nil, nil)

		n, err := s.uc.ExpireOverdueBookings(context.Background(), 100)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("counts only the final attempt when the transaction re-runs", func() {
		row := s.overdueRow(booking.PaymentPending)

		s.uow.Attempts = 2
		defer func() { s.uow.Attempts = 0 }()

		s.bookingRepo.EXPECT().
			FindExpiredForUpdate(gomock.Any(), gomock.Any(), s.clk.Now(), 100).
			Return([]*shared.BookingRow{row}, nil).
			Times(2)
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), row.ID, booking.StatusExpired, row.PaymentStatus).
			Return(nil).
			Times(2)
		s.spotRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), row.SpotID, spot.StatusAvailable).
			Return(nil).
			Times(2)

		n, err := s.uc.ExpireOverdueBookings(context.Background(), 100)
		s.Require().NoError(err)
		s.Equal(1, n)
	})

	s.Run("propagates storage failures", func() {
		s.bookingRepo.EXPECT().
			FindExpiredForUpdate(gomock.Any(), gomock.Any(), s.clk.Now(), 100).
			Return(nil, infra.WrapRepoErr("failed to list expired bookings", nil))

		_, err := s.uc.ExpireOverdueBookings(context.Background(), 100)
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
