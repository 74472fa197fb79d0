package components

import (
	"flash-sale-api/internal/handler"
	"flash-sale-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSaleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
