package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSpotNotFound = errs.New("parking spot not found")

// SpotWithLocation pairs a spot with its owning location for detail views.
type SpotWithLocation struct {
	SpotView
	Location LocationSummary `json:"location"`
}

type SpotReadStore interface {
	FindAvailableByLocation(ctx context.Context, locationID uuid.UUID) ([]*SpotView, error)
	FindByNumber(ctx context.Context, locationID uuid.UUID, spotNumber string) (*SpotWithLocation, error)
	LocationExists(ctx context.Context, locationID uuid.UUID) (bool, error)
}

type SpotQueries interface {
	ListAvailable(ctx context.Context, locationID uuid.UUID) ([]*SpotView, error)
	GetByNumber(ctx context.Context, locationID uuid.UUID, spotNumber string) (*SpotWithLocation, error)
}

type spotQueriesImpl struct {
	store SpotReadStore
}

func NewSpotQueries(store SpotReadStore) SpotQueries {
	return &spotQueriesImpl{store: store}
}

func (q *spotQueriesImpl) ListAvailable(ctx context.Context, locationID uuid.UUID) ([]*SpotView, error) {
	exists, err := q.store.LocationExists(ctx, locationID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check location")
	}
	if !exists {
		return nil, ErrLocationNotFound
	}

	spots, err := q.store.FindAvailableByLocation(ctx, locationID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available spots")
	}
	return spots, nil
}

func (q *spotQueriesImpl) GetByNumber(ctx context.Context, locationID uuid.UUID, spotNumber string) (*SpotWithLocation, error) {
	s, err := q.store.FindByNumber(ctx, locationID, spotNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, errs.Wrap(err, "failed to find spot")
	}
	return s, nil
}
