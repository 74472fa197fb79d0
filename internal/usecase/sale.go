package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flash-sale-api/internal/domain/sale"
	"flash-sale-api/internal/infra"
	"flash-sale-api/internal/infra/db"
	"flash-sale-api/internal/pkg/clock"
	"flash-sale-api/internal/pkg/errs"
	"flash-sale-api/internal/pkg/sign"
	"flash-sale-api/internal/usecase/readmodel"
	"flash-sale-api/internal/usecase/shared"
)

var (
	ErrSaleNotFound = errors.New("sale not found")

	// Expected execution outcomes. These are named control flow, not
	// failures: the handler must distinguish them from internal errors.
	ErrInvalidToken = errors.New("exposure token mismatch")
	ErrAlreadyWon   = errors.New("requester already won this sale")
	ErrSaleClosed   = errors.New("sale is closed or exhausted")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type SaleRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.SaleRM, error)
	List(ctx context.Context, offset, limit int32) ([]*readmodel.SaleRM, error)
	ReduceStock(ctx context.Context, tx db.DBTX, id int64, now time.Time) (int64, error)
}

type WinRecordRepository interface {
	TryInsert(ctx context.Context, tx db.DBTX, saleID, requesterID int64) (int64, error)
	FindBySaleAndRequester(ctx context.Context, tx db.DBTX, saleID, requesterID int64) (*readmodel.WinRecordRM, error)
}

type SaleCache interface {
	Get(ctx context.Context, id int64) (*readmodel.SaleRM, error)
	Put(ctx context.Context, sale *readmodel.SaleRM) error
}

type SaleUseCase interface {
	ListSales(ctx context.Context, offset, limit int32) ([]*readmodel.SaleRM, error)
	GetSale(ctx context.Context, id int64) (*readmodel.SaleRM, error)
	Expose(ctx context.Context, id int64) (*readmodel.ExposureRM, error)
	Execute(ctx context.Context, saleID, requesterID int64, token string) (*readmodel.WinRecordRM, error)
}

type saleUseCaseImpl struct {
	saleRepo SaleRepository
	winRepo  WinRecordRepository
	cache    SaleCache
	uow      shared.UnitOfWork
	signer   *sign.Signer
	clock    clock.Clock
}

func NewSaleUseCase(
	saleRepo SaleRepository,
	winRepo WinRecordRepository,
	cache SaleCache,
	uow shared.UnitOfWork,
	signer *sign.Signer,
	clock clock.Clock,
) SaleUseCase {
	return &saleUseCaseImpl{
		saleRepo: saleRepo,
		winRepo:  winRepo,
		cache:    cache,
		uow:      uow,
		signer:   signer,
		clock:    clock,
	}
}

func (u *saleUseCaseImpl) ListSales(ctx context.Context, offset, limit int32) ([]*readmodel.SaleRM, error) {
	sales, err := u.saleRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// GetSale is the cache-aside read path: cache hit returns without a store
// round-trip; a miss queries the ledger and writes through. Misses are not
// cached, and concurrent misses may each repopulate the cache; item metadata
// changes rarely enough that stampede protection is not worth its cost here.
func (u *saleUseCaseImpl) GetSale(ctx context.Context, id int64) (*readmodel.SaleRM, error) {
	cached, err := u.cache.Get(ctx, id)
	if err != nil {
		// The cache is an optimization; the ledger stays authoritative.
		slog.Warn("sale cache get failed, falling back to store", "sale_id", id, "error", err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	saleRM, err := u.saleRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, errs.Wrap(err, "failed to find sale")
	}

	if err := u.cache.Put(ctx, saleRM); err != nil {
		slog.Warn("sale cache put failed", "sale_id", id, "error", err.Error())
	}

	return saleRM, nil
}

// Expose decides whether to hand out the signed execution token. Outside the
// window it returns the server clock and the window bounds instead, so the
// client can render a countdown without trusting its own clock. Safe to poll.
func (u *saleUseCaseImpl) Expose(ctx context.Context, id int64) (*readmodel.ExposureRM, error) {
	saleRM, err := u.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	saleEntity, err := sale.NewSale(saleRM.ID, saleRM.Name, saleRM.Remaining, saleRM.StartAt, saleRM.EndAt)
	if err != nil {
		return nil, errs.Wrap(err, "invalid sale row")
	}

	now := u.clock.Now()
	if !saleEntity.OpenAt(now) {
		return &readmodel.ExposureRM{
			Exposed: false,
			SaleID:  saleRM.ID,
			Now:     now,
			StartAt: saleRM.StartAt,
			EndAt:   saleRM.EndAt,
		}, nil
	}

	return &readmodel.ExposureRM{
		Exposed: true,
		SaleID:  saleRM.ID,
		Token:   u.signer.Sign(saleRM.ID),
	}, nil
}
