//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"
	queriesmock "parkspot/tests/mock/queries"
	sharedmock "parkspot/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	spotRepo    *sharedmock.MockSpotRepository
	bookingRepo *sharedmock.MockBookingRepository
	queries     *queriesmock.MockBookingQueries
	uc          commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.spotRepo = sharedmock.NewMockSpotRepository(s.ctrl)
	s.bookingRepo = sharedmock.NewMockBookingRepository(s.ctrl)
	s.queries = queriesmock.NewMockBookingQueries(s.ctrl)

	uow := sharedmock.NewStubUoW(&sharedmock.StubTx{
		SpotRepo:     s.spotRepo,
		BookingRepo:  s.bookingRepo,
		LocationRepo: sharedmock.NewMockLocationRepository(s.ctrl),
	})
	factory := booking.NewFactory(clock.NewRealClock())
	s.uc = commands.NewBookingUseCase(uow, factory, s.queries)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) spotRow(status spot.Status) *shared.SpotRow {
	return &shared.SpotRow{
		ID:              uuid.New(),
		LocationID:      uuid.New(),
		SpotNumber:      "A-01",
		Status:          status,
		HourlyRateCents: 500,
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()
	req := b.BuildCreateRequestDTO()
	userID := b.UserID

	s.Run("reserves an available spot", func() {
		row := s.spotRow(spot.StatusAvailable)
		bookingID := uuid.New()
		view := b.BuildView()

		s.spotRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), req.LocationID, "A-01").
			Return(row, nil)
		s.bookingRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, nb *booking.Booking) (uuid.UUID, error) {
				s.Equal(userID, nb.UserID())
				s.Equal(row.ID, nb.SpotID())
				s.Equal(int64(1000), nb.TotalAmount().Cents())
				s.Equal(booking.StatusActive, nb.Status())
				return bookingID, nil
			})
		s.spotRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), row.ID, spot.StatusOccupied).
			Return(nil)
		s.queries.EXPECT().
			GetByID(gomock.Any(), bookingID, userID).
			Return(view, nil)

		got, err := s.uc.CreateBooking(context.Background(), req, userID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("conflict when the spot is not available", func() {
		for _, status := range []spot.Status{spot.StatusOccupied, spot.StatusReserved, spot.StatusMaintenance} {
			s.spotRepo.EXPECT().
				FindForUpdate(gomock.Any(), gomock.Any(), req.LocationID, "A-01").
				Return(s.spotRow(status), nil)

			_, err := s.uc.CreateBooking(context.Background(), req, userID)
			s.Require().ErrorIs(err, commands.ErrSpotNotAvailable)

			var unavailable *commands.SpotUnavailableError
			s.Require().True(errors.As(err, &unavailable))
			s.Equal(status, unavailable.SpotStatus)
		}
	})

	s.Run("not found when the spot does not exist", func() {
		s.spotRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), req.LocationID, "A-01").
			Return(nil, infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound))

		_, err := s.uc.CreateBooking(context.Background(), req, userID)
		s.Require().ErrorIs(err, commands.ErrSpotNotFound)
	})

	s.Run("lock timeout surfaces as contention", func() {
		s.spotRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), req.LocationID, "A-01").
			Return(nil, infra.WrapRepoErr("failed to lock parking spot", nil, infra.KindLockTimeout))

		_, err := s.uc.CreateBooking(context.Background(), req, userID)
		s.Require().ErrorIs(err, commands.ErrSpotContended)
	})

	s.Run("invalid duration fails before touching storage", func() {
		bad := req
		bad.DurationHours = 25

		_, err := s.uc.CreateBooking(context.Background(), bad, userID)
		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})
}

func (s *BookingCommandsTestSuite) TestCompleteBooking() {
	userID := uuid.New()
	bookingID := uuid.New()

	row := func(status booking.Status) *shared.BookingRow {
		return &shared.BookingRow{
			ID:            bookingID,
			UserID:        userID,
			SpotID:        uuid.New(),
			Status:        status,
			PaymentStatus: booking.PaymentPending,
		}
	}

	s.Run("completes an active booking and frees the spot", func() {
		r := row(booking.StatusActive)
		view := builder.NewBookingBuilder().BuildView()

		s.bookingRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), bookingID, userID).
			Return(r, nil)
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), bookingID, booking.StatusCompleted, booking.PaymentCompleted).
			Return(nil)
		s.spotRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), r.SpotID, spot.StatusAvailable).
			Return(nil)
		s.queries.EXPECT().
			GetByID(gomock.Any(), bookingID, userID).
			Return(view, nil)

		got, err := s.uc.CompleteBooking(context.Background(), bookingID, userID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("completes cancelled and expired bookings as well", func() {
		for _, status := range []booking.Status{booking.StatusCancelled, booking.StatusExpired} {
			r := row(status)
			view := builder.NewBookingBuilder().BuildView()

			s.bookingRepo.EXPECT().
				FindForUpdate(gomock.Any(), gomock.Any(), bookingID, userID).
				Return(r, nil)
			s.bookingRepo.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any(), bookingID, booking.StatusCompleted, booking.PaymentCompleted).
				Return(nil)
			s.spotRepo.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any(), r.SpotID, spot.StatusAvailable).
				Return(nil)
			s.queries.EXPECT().
				GetByID(gomock.Any(), bookingID, userID).
				Return(view, nil)

			_, err := s.uc.CompleteBooking(context.Background(), bookingID, userID)
			s.Require().NoError(err)
		}
	})

	s.Run("rejects an already completed booking", func() {
		s.bookingRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), bookingID, userID).
			Return(row(booking.StatusCompleted), nil)

		_, err := s.uc.CompleteBooking(context.Background(), bookingID, userID)
		s.Require().ErrorIs(err, commands.ErrBookingAlreadyCompleted)
	})

	s.Run("foreign booking reads as absent", func() {
		s.bookingRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), bookingID, userID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.uc.CompleteBooking(context.Background(), bookingID, userID)
		s.Require().ErrorIs(err, commands.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	userID := uuid.New()
	bookingID := uuid.New()

	row := func(status booking.Status) *shared.BookingRow {
		return &shared.BookingRow{
			ID:            bookingID,
			UserID:        userID,
			SpotID:        uuid.New(),
			Status:        status,
			PaymentStatus: booking.PaymentPending,
		}
	}

	s.Run("cancels an active booking, payment untouched", func() {
		r := row(booking.StatusActive)
		view := builder.NewBookingBuilder().BuildView()

		s.bookingRepo.EXPECT().
			FindForUpdate(gomock.Any(), gomock.Any(), bookingID, userID).
			Return(r, nil)
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), bookingID, booking.StatusCancelled, booking.PaymentPending).
			Return(nil)
		s.spotRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), r.SpotID, spot.StatusAvailable).
			Return(nil)
		s.queries.EXPECT().
			GetByID(gomock.Any(), bookingID, userID).
			Return(view, nil)

		_, err := s.uc.CancelBooking(context.Background(), bookingID, userID)
		s.Require().NoError(err)
	})

	s.Run("rejects terminal states", func() {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			s.bookingRepo.EXPECT().
				FindForUpdate(gomock.Any(), gomock.Any(), bookingID, userID).
				Return(row(status), nil)

			_, err := s.uc.CancelBooking(context.Background(), bookingID, userID)
			s.Require().ErrorIs(err, commands.ErrBookingNotCancellable)
		}
	})
}
