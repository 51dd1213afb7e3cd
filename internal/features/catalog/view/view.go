package view

import (
	"sync"

	"shopfront/internal/core/metrics"
	"shopfront/internal/features/catalog/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Engine computes the visible product list from catalog state and caches the
// result. The memo is keyed on exactly four inputs: the product collection
// (by slice identity, since the store replaces it wholesale and never mutates
// it in place), the search text, the category and the sort key — all four
// together. Any other state change, cart mutations included, leaves the
// cache intact, and a hit returns the identical slice.
type Engine struct {
	mu   sync.Mutex
	coll *collate.Collator

	haveMemo bool
	products []domain.Product
	search   string
	category string
	sort     domain.SortKey
	result   []domain.Product
}

// NewEngine creates an engine sorting names under the English locale, which
// matches the upstream catalog language.
func NewEngine() *Engine {
	return NewEngineForLocale(language.English)
}

// NewEngineForLocale creates an engine with an explicit collation locale.
func NewEngineForLocale(tag language.Tag) *Engine {
	return &Engine{coll: collate.New(tag)}
}

// VisibleProducts returns the filtered, sorted product list for the state.
// Repeated calls with unchanged inputs return the cached slice without
// recomputing.
func (e *Engine) VisibleProducts(s domain.CatalogState) []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.haveMemo &&
		sameSlice(e.products, s.Products) &&
		e.search == s.SearchText &&
		e.category == s.Category &&
		e.sort == s.Sort {
		metrics.DerivedViewCacheHitsTotal.Inc()
		return e.result
	}

	filtered := domain.Filter(s.Products, s.SearchText, s.Category)
	result := domain.Sort(filtered, s.Sort, e.coll)
	metrics.DerivedViewRecomputesTotal.Inc()

	e.haveMemo = true
	e.products = s.Products
	e.search = s.SearchText
	e.category = s.Category
	e.sort = s.Sort
	e.result = result

	return result
}

// sameSlice reports whether two slices share identity: same length and same
// backing array. Two empty slices are identical by definition.
func sameSlice(a, b []domain.Product) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
