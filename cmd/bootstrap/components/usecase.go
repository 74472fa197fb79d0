package components

import (
	"flash-sale-api/internal/pkg/clock"
	"flash-sale-api/internal/pkg/config"
	"flash-sale-api/internal/pkg/sign"
	"flash-sale-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSigner,
		usecase.NewSaleUseCase,
	),
)

func NewSigner(cfg config.Config) *sign.Signer {
	return sign.New(cfg.Sale.TokenSecret)
}
