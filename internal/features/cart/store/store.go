package store

import (
	"shopfront/internal/features/cart/domain"
	"shopfront/internal/store"
)

// CartStore owns the cart state. All mutations run through the hub, so every
// intent synchronously produces a new snapshot and notifies subscribers.
type CartStore struct {
	hub *store.Hub[domain.CartState]
}

// New creates a cart store with an empty cart.
func New() *CartStore {
	return NewWithState(domain.Empty())
}

// NewWithState creates a cart store with an injected initial state.
func NewWithState(initial domain.CartState) *CartStore {
	return &CartStore{hub: store.NewHub("cart", initial)}
}

// Snapshot returns the current cart state.
func (s *CartStore) Snapshot() domain.CartState {
	return s.hub.Snapshot()
}

// Subscribe registers a callback invoked with the new snapshot after every
// intent. The returned function unsubscribes.
func (s *CartStore) Subscribe(fn func(domain.CartState)) (unsubscribe func()) {
	return s.hub.Subscribe(fn)
}

// AddItem adds one unit of the product to the cart.
func (s *CartStore) AddItem(in domain.LineInput) domain.CartState {
	return s.hub.Dispatch("add_item", func(c domain.CartState) domain.CartState {
		return c.AddLine(in)
	})
}

// RemoveItem removes the product's line from the cart.
func (s *CartStore) RemoveItem(productID int) domain.CartState {
	return s.hub.Dispatch("remove_item", func(c domain.CartState) domain.CartState {
		return c.RemoveLine(productID)
	})
}

// SetQuantity overwrites the line's quantity. Quantities below 1 are ignored.
func (s *CartStore) SetQuantity(productID, quantity int) domain.CartState {
	return s.hub.Dispatch("set_quantity", func(c domain.CartState) domain.CartState {
		return c.SetQuantity(productID, quantity)
	})
}

// Clear empties the cart.
func (s *CartStore) Clear() domain.CartState {
	return s.hub.Dispatch("clear", func(c domain.CartState) domain.CartState {
		return c.Cleared()
	})
}
