package bootstrap

import (
	"log/slog"

	"flash-sale-api/internal/handler/middleware"
	"flash-sale-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	logger := middleware.NewLogger(cfg.Log)
	slog.SetDefault(logger.GetSlogLogger())
	return logger
}
