package components

import (
	"parkspot/internal/infra/db"
	"parkspot/internal/infra/readstore"
	"parkspot/internal/infra/uow"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
		),
		fx.Annotate(
			readstore.NewSpotReadStore,
			fx.As(new(queries.SpotReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
