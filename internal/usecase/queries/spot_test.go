//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkspot/internal/infra"
	"parkspot/internal/usecase/queries"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSpotQueries(t *testing.T) (queries.SpotQueries, *queriesmock.MockSpotReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSpotReadStore(ctrl)
	return queries.NewSpotQueries(store), store
}

func TestSpotQueriesListAvailable(t *testing.T) {
	locationID := uuid.New()

	t.Run("returns available spots for a known location", func(t *testing.T) {
		q, store := newSpotQueries(t)

		spots := []*queries.SpotView{
			{ID: uuid.New(), LocationID: locationID, SpotNumber: "A-01", Status: "available", HourlyRate: 5},
			{ID: uuid.New(), LocationID: locationID, SpotNumber: "A-02", Status: "available", HourlyRate: 7.5},
		}
		store.EXPECT().LocationExists(gomock.Any(), locationID).Return(true, nil)
		store.EXPECT().FindAvailableByLocation(gomock.Any(), locationID).Return(spots, nil)

		got, err := q.ListAvailable(context.Background(), locationID)
		require.NoError(t, err)
		assert.Equal(t, spots, got)
	})

	t.Run("unknown location is an error, not an empty list", func(t *testing.T) {
		q, store := newSpotQueries(t)

		store.EXPECT().LocationExists(gomock.Any(), locationID).Return(false, nil)

		_, err := q.ListAvailable(context.Background(), locationID)
		require.ErrorIs(t, err, queries.ErrLocationNotFound)
	})

	t.Run("fully booked location yields an empty list", func(t *testing.T) {
		q, store := newSpotQueries(t)

		store.EXPECT().LocationExists(gomock.Any(), locationID).Return(true, nil)
		store.EXPECT().FindAvailableByLocation(gomock.Any(), locationID).Return([]*queries.SpotView{}, nil)

		got, err := q.ListAvailable(context.Background(), locationID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSpotQueriesGetByNumber(t *testing.T) {
	locationID := uuid.New()

	t.Run("returns the spot with its location", func(t *testing.T) {
		q, store := newSpotQueries(t)

		view := &queries.SpotWithLocation{
			SpotView: queries.SpotView{ID: uuid.New(), LocationID: locationID, SpotNumber: "B-03", Status: "occupied"},
			Location: queries.LocationSummary{ID: locationID, Name: "Central Garage"},
		}
		store.EXPECT().FindByNumber(gomock.Any(), locationID, "B-03").Return(view, nil)

		got, err := q.GetByNumber(context.Background(), locationID, "B-03")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps a missing row to the not-found sentinel", func(t *testing.T) {
		q, store := newSpotQueries(t)

		store.EXPECT().FindByNumber(gomock.Any(), locationID, "Z-99").
			Return(nil, infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound))

		_, err := q.GetByNumber(context.Background(), locationID, "Z-99")
		require.ErrorIs(t, err, queries.ErrSpotNotFound)
	})
}
