package cache

import (
	"context"
	"time"

	"github.com/Hardik699/hanuram-sale-new/internal/domain/entity"
)

// SalesCache is an optional TTL-bounded cache for computed sales
// aggregates. Staleness is bounded by the TTL; uploads do not invalidate
// entries.
type SalesCache interface {
	Get(ctx context.Context, key string) (*entity.SalesAggregate, bool, error)
	Set(ctx context.Context, key string, value *entity.SalesAggregate, ttl time.Duration) error
}

// NoopSalesCache disables caching; every query recomputes.
type NoopSalesCache struct{}

func (NoopSalesCache) Get(_ context.Context, _ string) (*entity.SalesAggregate, bool, error) {
	return nil, false, nil
}

func (NoopSalesCache) Set(_ context.Context, _ string, _ *entity.SalesAggregate, _ time.Duration) error {
	return nil
}
