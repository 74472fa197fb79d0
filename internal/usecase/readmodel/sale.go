package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// SaleRM is the read model for a flash-sale item. The row in the ledger store
// is the source of truth; this snapshot is what flows through the cache, so
// Remaining may lag behind the authoritative counter.
type SaleRM struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Remaining int32     `json:"remaining"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// WinRecordRM is the durable proof that a requester won a sale, joined with
// the sale name for display.
type WinRecordRM struct {
	ID          uuid.UUID `json:"id"`
	SaleID      int64     `json:"saleId"`
	RequesterID int64     `json:"requesterId"`
	SaleName    string    `json:"saleName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExposureRM carries either a usable token (window open) or the server's
// authoritative clock plus the window bounds (window not open) so clients can
// render a countdown.
type ExposureRM struct {
	Exposed bool
	SaleID  int64
	Token   string
	Now     time.Time
	StartAt time.Time
	EndAt   time.Time
}
