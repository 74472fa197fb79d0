package repository

import (
	"context"
	"time"

	"flash-sale-api/internal/infra"
	"flash-sale-api/internal/infra/db"
	"flash-sale-api/internal/usecase/readmodel"
)

type SaleRepository struct {
	db db.DBTX
}

func NewSaleRepository(pool db.DBTX) *SaleRepository {
	return &SaleRepository{db: pool}
}

const findSaleByIDQuery = `
SELECT id, name, remaining, start_at, end_at, created_at
FROM sales
WHERE id = $1`

func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*readmodel.SaleRM, error) {
	row := r.db.QueryRow(ctx, findSaleByIDQuery, id)

	sale, err := scanSale(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale by ID", err)
	}

	return sale, nil
}

const listSalesQuery = `
SELECT id, name, remaining, start_at, end_at, created_at
FROM sales
ORDER BY created_at DESC
OFFSET $1 LIMIT $2`

func (r *SaleRepository) List(ctx context.Context, offset, limit int32) ([]*readmodel.SaleRM, error) {
	rows, err := r.db.Query(ctx, listSalesQuery, offset, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	defer rows.Close()

	var sales []*readmodel.SaleRM
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale row", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sale rows", err)
	}

	return sales, nil
}

// Single conditional statement: the WHERE clause is the cross-process mutual
// exclusion. No application-level read-then-write is allowed here.
const reduceStockQuery = `
UPDATE sales
SET remaining = remaining - 1
WHERE id = $1 AND remaining > 0 AND start_at <= $2 AND end_at >= $2`

// ReduceStock decrements the counter iff stock remains and the window covers
// now. Returns the number of affected rows (0 or 1); 0 means exhausted or
// outside the window.
func (r *SaleRepository) ReduceStock(ctx context.Context, tx db.DBTX, id int64, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, reduceStockQuery, id, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reduce sale stock", err)
	}

	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*readmodel.SaleRM, error) {
	var sale readmodel.SaleRM
	err := row.Scan(&sale.ID, &sale.Name, &sale.Remaining, &sale.StartAt, &sale.EndAt, &sale.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}
