package components

import (
	"lead-exchange/internal/handler"
	"lead-exchange/internal/handler/api"
	"lead-exchange/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInventoryHandler,
		api.NewPurchaseHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
