// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"reporting_backend/internal/feature/reporting/domain/entity"
	"reporting_backend/internal/feature/reporting/usecase"
)

// CachingReportRepository decorates a ReportRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only the two fixed-shape reports are
// cached; the date-parameterized order query passes through, since its key
// space is unbounded.
type CachingReportRepository struct {
	inner     usecase.ReportRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ReportRepository = (*CachingReportRepository)(nil)

// NewCachingReportRepository decorates a ReportRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "reports".
func NewCachingReportRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ReportRepository, namespace string) *CachingReportRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "reports"
	}
	return &CachingReportRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListUsersWithAddress serves the user summary from cache when possible,
// falling back to the store and repopulating on a miss.
func (c *CachingReportRepository) ListUsersWithAddress(ctx context.Context) ([]entity.User, error) {
	if c.rdb == nil {
		return c.inner.ListUsersWithAddress(ctx)
	}

	key := c.namespace + ":user-summary"
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// An undecodable entry is treated as a miss.
	}

	users, err := c.inner.ListUsersWithAddress(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(users); err == nil {
		// Best effort: a cache write failure never fails the read.
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return users, nil
}

// ListProductsByOrdersReceived serves the product ranking from cache when
// possible, falling back to the store and repopulating on a miss.
func (c *CachingReportRepository) ListProductsByOrdersReceived(ctx context.Context) ([]entity.Product, error) {
	if c.rdb == nil {
		return c.inner.ListProductsByOrdersReceived(ctx)
	}

	key := c.namespace + ":top-products"
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
	}

	products, err := c.inner.ListProductsByOrdersReceived(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(products); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return products, nil
}

// ListOrders passes through uncached.
func (c *CachingReportRepository) ListOrders(ctx context.Context, start, end *time.Time) ([]entity.Order, error) {
	return c.inner.ListOrders(ctx, start, end)
}
