package usecase

import (
	"context"
	"errors"
	"log/slog"

	"flash-sale-api/internal/infra/db"
	"flash-sale-api/internal/pkg/errs"
	"flash-sale-api/internal/usecase/readmodel"
)

// Execute turns a purchase attempt into exactly one terminal outcome:
// a win record (nil error), ErrInvalidToken, ErrAlreadyWon, ErrSaleClosed,
// or an error marked ErrDatabaseOperationFailed.
//
// No in-process lock is taken. Many handlers race on the same sale row and
// all mutual exclusion is delegated to two single-statement store operations:
// the unique-constraint win insert and the conditional decrement. The insert
// runs first so a requester retrying with the same token can never decrement
// stock twice; the surrounding transaction rolls the insert back when the
// decrement affects zero rows, so an exhausted sale leaves no orphaned win.
//
// Terminal states are stable: once a requester has won, every further attempt
// lands on ErrAlreadyWon.
func (u *saleUseCaseImpl) Execute(ctx context.Context, saleID, requesterID int64, token string) (*readmodel.WinRecordRM, error) {
	if !u.signer.Verify(saleID, token) {
		// Tampered or forged request; the store is never touched.
		return nil, ErrInvalidToken
	}

	now := u.clock.Now()

	var win *readmodel.WinRecordRM
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, err := u.winRepo.TryInsert(ctx, tx, saleID, requesterID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if inserted == 0 {
			return ErrAlreadyWon
		}

		reduced, err := u.saleRepo.ReduceStock(ctx, tx, saleID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if reduced == 0 {
			// Exhausted or outside the window; the rollback discards the
			// win record inserted above.
			return ErrSaleClosed
		}

		win, err = u.winRepo.FindBySaleAndRequester(ctx, tx, saleID, requesterID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyWon), errors.Is(err, ErrSaleClosed):
			// Expected outcomes, not defects.
			return nil, err
		default:
			slog.Error("sale execution failed",
				"sale_id", saleID,
				"requester_id", requesterID,
				"error", err.Error(),
			)
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return win, nil
}
