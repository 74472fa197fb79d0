package builder

import (
	"time"

	"flash-sale-api/internal/domain/sale"
	"flash-sale-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// SaleBuilder builds sale fixtures with an open window around a fixed base
// time. Tests move the clock rather than the fixture.
type SaleBuilder struct {
	id        int64
	name      string
	remaining int32
	startAt   time.Time
	endAt     time.Time
	createdAt time.Time
}

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func NewSaleBuilder() *SaleBuilder {
	return &SaleBuilder{
		id:        1000,
		name:      "1000 yen off iPhone",
		remaining: 100,
		startAt:   baseTime.Add(-time.Hour),
		endAt:     baseTime.Add(time.Hour),
		createdAt: baseTime.Add(-24 * time.Hour),
	}
}

func (b *SaleBuilder) WithID(id int64) *SaleBuilder {
	b.id = id
	return b
}

func (b *SaleBuilder) WithName(name string) *SaleBuilder {
	b.name = name
	return b
}

func (b *SaleBuilder) WithRemaining(remaining int32) *SaleBuilder {
	b.remaining = remaining
	return b
}

func (b *SaleBuilder) WithWindow(startAt, endAt time.Time) *SaleBuilder {
	b.startAt = startAt
	b.endAt = endAt
	return b
}

// BaseTime is inside the default window; use it as the mock clock's start.
func (b *SaleBuilder) BaseTime() time.Time {
	return baseTime
}

func (b *SaleBuilder) BuildRM() *readmodel.SaleRM {
	return &readmodel.SaleRM{
		ID:        b.id,
		Name:      b.name,
		Remaining: b.remaining,
		StartAt:   b.startAt,
		EndAt:     b.endAt,
		CreatedAt: b.createdAt,
	}
}

func (b *SaleBuilder) BuildDomain() (*sale.Sale, error) {
	return sale.NewSale(b.id, b.name, b.remaining, b.startAt, b.endAt)
}

// WinRecordBuilder builds win-record read models.
type WinRecordBuilder struct {
	id          uuid.UUID
	saleID      int64
	requesterID int64
	saleName    string
	createdAt   time.Time
}

func NewWinRecordBuilder() *WinRecordBuilder {
	return &WinRecordBuilder{
		id:          uuid.New(),
		saleID:      1000,
		requesterID: 13812345678,
		saleName:    "1000 yen off iPhone",
		createdAt:   baseTime,
	}
}

func (b *WinRecordBuilder) WithSaleID(saleID int64) *WinRecordBuilder {
	b.saleID = saleID
	return b
}

func (b *WinRecordBuilder) WithRequesterID(requesterID int64) *WinRecordBuilder {
	b.requesterID = requesterID
	return b
}

func (b *WinRecordBuilder) BuildRM() *readmodel.WinRecordRM {
	return &readmodel.WinRecordRM{
		ID:          b.id,
		SaleID:      b.saleID,
		RequesterID: b.requesterID,
		SaleName:    b.saleName,
		CreatedAt:   b.createdAt,
	}
}
