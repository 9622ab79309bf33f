package components

import (
	"gearshare/internal/infra/db"
	"gearshare/internal/infra/repository"
	"gearshare/internal/infra/uow"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			repository.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
		fx.Annotate(
			repository.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
