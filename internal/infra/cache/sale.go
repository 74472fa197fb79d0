// Package cache is the read-through metadata cache in front of the ledger
// store. It only ever holds sale metadata snapshots; the Postgres row stays
// the source of truth and staleness is bounded by the store-level TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flash-sale-api/internal/pkg/errs"
	"flash-sale-api/internal/usecase/readmodel"

	"github.com/redis/go-redis/v9"
)

type SaleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSaleCache(client *redis.Client, ttl time.Duration) *SaleCache {
	return &SaleCache{client: client, ttl: ttl}
}

func saleKey(id int64) string {
	return fmt.Sprintf("sale:%d", id)
}

// Get returns (nil, nil) on a cache miss so the caller falls through to the
// store without treating the miss as a failure.
func (c *SaleCache) Get(ctx context.Context, id int64) (*readmodel.SaleRM, error) {
	payload, err := c.client.Get(ctx, saleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to get sale from cache")
	}

	var sale readmodel.SaleRM
	if err := json.Unmarshal(payload, &sale); err != nil {
		// A corrupt entry behaves like a miss; the next Put overwrites it.
		return nil, nil
	}

	return &sale, nil
}

func (c *SaleCache) Put(ctx context.Context, sale *readmodel.SaleRM) error {
	payload, err := json.Marshal(sale)
	if err != nil {
		return errs.Wrap(err, "failed to marshal sale for cache")
	}

	if err := c.client.Set(ctx, saleKey(sale.ID), payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to put sale into cache")
	}

	return nil
}
