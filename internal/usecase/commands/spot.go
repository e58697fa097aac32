package commands

import (
	"context"
	"math"

	"parkspot/internal/domain/spot"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateSpotNumber = errs.New("spot number already exists at location")
	ErrLocationNotFound    = errs.New("parking location not found")
	ErrInvalidSpotStatus   = errs.New("invalid spot status")
)

type SpotCommands interface {
	CreateSpot(ctx context.Context, req reqdto.CreateSpotRequest) (*queries.SpotView, error)
	UpdateSpotStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateSpotStatusRequest) error
}

type spotUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSpotUseCase(uow shared.UnitOfWork) SpotCommands {
	return &spotUseCaseImpl{uow: uow}
}

func (u *spotUseCaseImpl) CreateSpot(ctx context.Context, req reqdto.CreateSpotRequest) (*queries.SpotView, error) {
	rateCents := int64(math.Round(req.HourlyRate * 100))
	newSpot, err := spot.NewSpot(req.LocationID, req.SpotNumber, rateCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Spots().Create(ctx, tx.DB(), newSpot)
		return err
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateSpotNumber)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrLocationNotFound)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return &queries.SpotView{
		ID:         newSpot.ID(),
		LocationID: newSpot.LocationID(),
		SpotNumber: newSpot.SpotNumber(),
		Status:     newSpot.Status().String(),
		HourlyRate: float64(newSpot.HourlyRateCents()) / 100,
		IsActive:   newSpot.IsActive(),
	}, nil
}

// UpdateSpotStatus is the operator override for manual state changes such as
// taking a spot into maintenance. It does not touch bookings.
func (u *spotUseCaseImpl) UpdateSpotStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateSpotStatusRequest) error {
	status := spot.Status(req.Status)
	if !status.IsValid() {
		return ErrInvalidSpotStatus
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Spots().FindByIDForUpdate(ctx, tx.DB(), id); err != nil {
			return err
		}
		return tx.Spots().UpdateStatus(ctx, tx.DB(), id, status)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrSpotNotFound)
		case infra.IsKind(err, infra.KindLockTimeout):
			return errs.Mark(err, ErrSpotContended)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
