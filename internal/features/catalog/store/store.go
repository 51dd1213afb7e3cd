package store

import (
	"shopfront/internal/features/catalog/domain"
	"shopfront/internal/features/catalog/view"
	"shopfront/internal/store"
)

// CatalogStore owns the raw product collection, the load status and the
// three filter parameters. The visible list is never part of the stored
// state: every update is two-phase — mutate the source state through the
// hub, then derive through the view engine.
type CatalogStore struct {
	hub  *store.Hub[domain.CatalogState]
	view *view.Engine
}

// New creates a catalog store with an empty catalog.
func New() *CatalogStore {
	return NewWithState(domain.Initial())
}

// NewWithState creates a catalog store with an injected initial state.
func NewWithState(initial domain.CatalogState) *CatalogStore {
	return &CatalogStore{
		hub:  store.NewHub("catalog", initial),
		view: view.NewEngine(),
	}
}

// Snapshot returns the current catalog state.
func (s *CatalogStore) Snapshot() domain.CatalogState {
	return s.hub.Snapshot()
}

// Subscribe registers a callback invoked with the new snapshot after every
// intent. The returned function unsubscribes.
func (s *CatalogStore) Subscribe(fn func(domain.CatalogState)) (unsubscribe func()) {
	return s.hub.Subscribe(fn)
}

// VisibleProducts returns the memoized filtered/sorted list for the current
// snapshot.
func (s *CatalogStore) VisibleProducts() []domain.Product {
	return s.view.VisibleProducts(s.hub.Snapshot())
}

// Populated reports whether a successful load has already happened. The
// loader uses it to suppress redundant fetches.
func (s *CatalogStore) Populated() bool {
	return len(s.hub.Snapshot().Products) > 0
}

// BeginLoad marks a fetch as in flight.
func (s *CatalogStore) BeginLoad() domain.CatalogState {
	return s.hub.Dispatch("begin_load", domain.CatalogState.Loading)
}

// LoadSucceeded replaces the product collection and re-derives the visible
// list under the filters active right now, so a filter set mid-load is
// applied, not lost.
func (s *CatalogStore) LoadSucceeded(products []domain.Product) domain.CatalogState {
	snap := s.hub.Dispatch("load_succeeded", func(c domain.CatalogState) domain.CatalogState {
		return c.Loaded(products)
	})
	s.view.VisibleProducts(snap)
	return snap
}

// LoadFailed records the fetch failure for the consumer to render.
func (s *CatalogStore) LoadFailed(message string) domain.CatalogState {
	return s.hub.Dispatch("load_failed", func(c domain.CatalogState) domain.CatalogState {
		return c.Failed(message)
	})
}

// SetSearchText applies a settled search query. Input debouncing is the
// consumer's job; the store only ever sees final values.
func (s *CatalogStore) SetSearchText(text string) domain.CatalogState {
	snap := s.hub.Dispatch("set_search_text", func(c domain.CatalogState) domain.CatalogState {
		return c.WithSearchText(text)
	})
	s.view.VisibleProducts(snap)
	return snap
}

// SetCategory applies a category filter.
func (s *CatalogStore) SetCategory(category string) domain.CatalogState {
	snap := s.hub.Dispatch("set_category", func(c domain.CatalogState) domain.CatalogState {
		return c.WithCategory(category)
	})
	s.view.VisibleProducts(snap)
	return snap
}

// SetSortKey applies a sort key; invalid keys are silently ignored.
func (s *CatalogStore) SetSortKey(key domain.SortKey) domain.CatalogState {
	snap := s.hub.Dispatch("set_sort_key", func(c domain.CatalogState) domain.CatalogState {
		return c.WithSort(key)
	})
	s.view.VisibleProducts(snap)
	return snap
}
