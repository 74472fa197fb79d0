package repository

import (
	"context"

	"flash-sale-api/internal/infra"
	"flash-sale-api/internal/infra/db"
	"flash-sale-api/internal/usecase/readmodel"
)

type WinRecordRepository struct {
	db db.DBTX
}

func NewWinRecordRepository(pool db.DBTX) *WinRecordRepository {
	return &WinRecordRepository{db: pool}
}

// The UNIQUE(sale_id, requester_id) constraint makes this insert idempotent
// under races; ON CONFLICT DO NOTHING turns the second attempt into a no-op
// reported as zero affected rows.
const tryInsertWinQuery = `
INSERT INTO win_records (sale_id, requester_id)
VALUES ($1, $2)
ON CONFLICT (sale_id, requester_id) DO NOTHING`

// TryInsert registers the win iff the requester has none for this sale yet.
// Returns the number of affected rows (0 means the requester already won).
func (r *WinRecordRepository) TryInsert(ctx context.Context, tx db.DBTX, saleID, requesterID int64) (int64, error) {
	tag, err := tx.Exec(ctx, tryInsertWinQuery, saleID, requesterID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert win record", err)
	}

	return tag.RowsAffected(), nil
}

const findWinQuery = `
SELECT w.id, w.sale_id, w.requester_id, s.name, w.created_at
FROM win_records w
JOIN sales s ON s.id = w.sale_id
WHERE w.sale_id = $1 AND w.requester_id = $2`

func (r *WinRecordRepository) FindBySaleAndRequester(ctx context.Context, tx db.DBTX, saleID, requesterID int64) (*readmodel.WinRecordRM, error) {
	var win readmodel.WinRecordRM
	err := tx.QueryRow(ctx, findWinQuery, saleID, requesterID).
		Scan(&win.ID, &win.SaleID, &win.RequesterID, &win.SaleName, &win.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("win record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find win record", err)
	}

	return &win, nil
}
