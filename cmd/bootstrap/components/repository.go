package components

import (
	"flash-sale-api/internal/infra/cache"
	"flash-sale-api/internal/infra/db"
	"flash-sale-api/internal/infra/repository"
	"flash-sale-api/internal/infra/uow"
	"flash-sale-api/internal/pkg/config"
	"flash-sale-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewSaleRepository,
			fx.As(new(usecase.SaleRepository)),
		),
		fx.Annotate(
			repository.NewWinRecordRepository,
			fx.As(new(usecase.WinRecordRepository)),
		),
		fx.Annotate(
			NewSaleCache,
			fx.As(new(usecase.SaleCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSaleCache(client *redis.Client, cfg config.Config) *cache.SaleCache {
	return cache.NewSaleCache(client, cfg.Sale.CacheTTL)
}
