package commands

import (
	"context"

	"parkspot/internal/domain/location"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type LocationCommands interface {
	CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (*queries.LocationView, error)
}

type locationUseCaseImpl struct {
	uow             shared.UnitOfWork
	locationQueries queries.LocationQueries
}

func NewLocationUseCase(uow shared.UnitOfWork, locationQueries queries.LocationQueries) LocationCommands {
	return &locationUseCaseImpl{
		uow:             uow,
		locationQueries: locationQueries,
	}
}

func (u *locationUseCaseImpl) CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (*queries.LocationView, error) {
	loc, err := location.NewLocation(
		req.Name, req.Address, req.City,
		req.Latitude, req.Longitude,
		req.TotalSpots, req.GeoJSON,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Locations().Create(ctx, tx.DB(), loc)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.locationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch location after write")
	}
	return view, nil
}
