package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shopfront/internal/core/cache"
	"shopfront/internal/core/logger"
	"shopfront/internal/features/catalog/domain"
	"shopfront/internal/features/catalog/ports"

	"go.uber.org/zap"
)

const productsCacheKey = "catalog_products"

// CachedProductSource decorates a ProductSource with a cache. A fresh cached
// payload is served without touching the inner source; a miss or a corrupt
// payload falls through, and the fetched collection is written back with the
// configured TTL. Cache write failures are logged, never surfaced: the cache
// is an accelerator, not a source of truth.
type CachedProductSource struct {
	inner ports.ProductSource
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedProductSource wraps inner with the cache.
func NewCachedProductSource(inner ports.ProductSource, c cache.Cache, ttl time.Duration) *CachedProductSource {
	return &CachedProductSource{
		inner: inner,
		cache: c,
		ttl:   ttl,
		log:   logger.Named("catalog_cache"),
	}
}

// FetchProducts returns the cached collection when fresh, the inner source's
// otherwise.
func (s *CachedProductSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if data, err := s.cache.Get(ctx, productsCacheKey); err == nil {
		var products []domain.Product
		if err := json.Unmarshal(data, &products); err == nil {
			s.log.Debug("serving products from cache", zap.Int("count", len(products)))
			return products, nil
		}
		s.log.Warn("corrupt cached payload, falling through to source")
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("cache read failed, falling through to source", zap.Error(err))
	}

	products, err := s.inner.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("inner source failed: %w", err)
	}

	if data, err := json.Marshal(products); err == nil {
		if err := s.cache.Set(ctx, productsCacheKey, data, s.ttl); err != nil {
			s.log.Warn("cache write failed", zap.Error(err))
		}
	}

	return products, nil
}
