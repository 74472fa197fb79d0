package shared

import (
	"context"

	"flash-sale-api/internal/infra/db"
)

// UnitOfWork scopes a function to a single database transaction. The two-step
// execution write (win insert + conditional decrement) runs through Within so
// the insert never survives a failed decrement.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
