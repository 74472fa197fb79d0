package sale

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow = errors.New("sale window end must be after start")
	ErrNegativeStock = errors.New("sale stock must not be negative")
)

// Sale is the domain view of a flash-sale item. The entity never acts as the
// source of truth for the counter; the ledger row does. It exists to hold the
// window rules the exposure gate asks about.
type Sale struct {
	id        int64
	name      string
	remaining int32
	startAt   time.Time
	endAt     time.Time
}

func NewSale(id int64, name string, remaining int32, startAt, endAt time.Time) (*Sale, error) {
	if !endAt.After(startAt) {
		return nil, ErrInvalidWindow
	}
	if remaining < 0 {
		return nil, ErrNegativeStock
	}

	return &Sale{
		id:        id,
		name:      name,
		remaining: remaining,
		startAt:   startAt,
		endAt:     endAt,
	}, nil
}

// OpenAt reports whether execution is permitted at t. Stock is deliberately
// not part of this check: an exhausted sale still exposes its token, and the
// conditional decrement is what refuses the purchase.
func (s *Sale) OpenAt(t time.Time) bool {
	return !t.Before(s.startAt) && !t.After(s.endAt)
}

func (s *Sale) ID() int64          { return s.id }
func (s *Sale) Name() string       { return s.name }
func (s *Sale) Remaining() int32   { return s.remaining }
func (s *Sale) StartAt() time.Time { return s.startAt }
func (s *Sale) EndAt() time.Time   { return s.endAt }
