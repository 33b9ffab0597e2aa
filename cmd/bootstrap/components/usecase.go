package components

import (
	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra/metrics"
	"asset-factory/internal/pkg/clock"
	"asset-factory/internal/usecase"
	"asset-factory/internal/usecase/commands"
	"asset-factory/internal/usecase/queries"
	"asset-factory/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	authority.NewIssuer,
	fx.Annotate(
		metrics.NewRecorder,
		fx.As(new(shared.Recorder)),
	),
	shared.NewExecutor,
	func(exec *shared.Executor) queries.Reader {
		return exec
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewProtocolCommands,
		commands.NewAdminCommands,
		commands.NewCollectionCommands,
		commands.NewReservationCommands,
		commands.NewSettlementCommands,
		commands.NewAssetCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProgramQueries,
		queries.NewLedgerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
