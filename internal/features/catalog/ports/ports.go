package ports

import (
	"context"

	"shopfront/internal/features/catalog/domain"
)

// ProductSource is the secondary port that supplies the raw product
// collection. The store does not care how it is implemented (network, cache,
// mock) as long as it yields the product schema or an error.
type ProductSource interface {
	// FetchProducts returns the full product collection. It honors context
	// cancellation: an abandoned fetch must return promptly with ctx.Err().
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
