package components

import (
	"log/slog"

	"lead-exchange/internal/pkg/clock"
	"lead-exchange/internal/pkg/config"
	"lead-exchange/internal/pkg/jwt"
	"lead-exchange/internal/usecase/commands"
	"lead-exchange/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(clients commands.ClientRepository, tokens *jwt.Service, clk clock.Clock, logger *slog.Logger) commands.AuthCommands {
			return commands.NewAuthCommands(clients, tokens, clk, logger)
		},
		func(inventory queries.InventoryQueries, pricing commands.PricingRepository, clk clock.Clock, cfg config.Config) commands.QuoteCommands {
			return commands.NewQuoteCommands(inventory, pricing, clk, cfg.Quote.Validity)
		},
		commands.NewAllocationCommands,
		commands.NewPurchaseCommands,
		commands.NewExportCommands,
	),
)
