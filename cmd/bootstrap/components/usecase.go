package components

import (
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserUseCase,
		commands.NewItemUseCase,
		commands.NewBookingUseCase,
		commands.NewRequestUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewBookingQueries,
		queries.NewRequestQueries,
	),
)
