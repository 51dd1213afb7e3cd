package store

import (
	"sync"

	"shopfront/internal/core/logger"
	"shopfront/internal/core/metrics"

	"go.uber.org/zap"
)

// Hub is the dispatch/subscribe bus shared by the cart and catalog stores.
// Every intent goes through Dispatch: the transition function produces a new
// snapshot, the snapshot is swapped in, and all subscribers are notified with
// it before Dispatch returns. Only one dispatch is in flight at a time.
//
// Dispatching from inside a subscriber callback is not supported; consumers
// that need to chain intents must do so after the triggering dispatch has
// returned.
type Hub[S any] struct {
	name string
	log  *zap.Logger

	mu       sync.RWMutex
	snapshot S

	subsMu sync.Mutex
	subs   map[uint64]func(S)
	nextID uint64
}

// NewHub creates a hub for the named store with an injected initial snapshot.
// Stores are explicit instances, never package-level singletons, so tests can
// build isolated ones.
func NewHub[S any](name string, initial S) *Hub[S] {
	return &Hub[S]{
		name:     name,
		log:      logger.Named(name),
		snapshot: initial,
		subs:     make(map[uint64]func(S)),
	}
}

// Snapshot returns the current state. Callbacks receive the snapshot as an
// argument and must not call Snapshot from inside a notification.
func (h *Hub[S]) Snapshot() S {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}

// Dispatch applies the transition to the current snapshot, swaps the result
// in, and synchronously notifies every subscriber. It returns the new
// snapshot.
func (h *Hub[S]) Dispatch(intent string, transition func(S) S) S {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshot = transition(h.snapshot)
	metrics.IntentsDispatchedTotal.WithLabelValues(h.name, intent).Inc()
	h.log.Debug("intent dispatched", zap.String("intent", intent))

	for _, fn := range h.subscribers() {
		fn(h.snapshot)
	}

	return h.snapshot
}

// Subscribe registers a callback invoked with the latest snapshot after every
// dispatch. The returned function unsubscribes; it is safe to call during
// teardown and more than once, and no notification is delivered after it
// returns.
func (h *Hub[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	h.subsMu.Lock()
	defer h.subsMu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	return func() {
		h.subsMu.Lock()
		defer h.subsMu.Unlock()
		delete(h.subs, id)
	}
}

// subscribers copies the current callback set so that notification iterates
// over a stable list even if an unsubscribe lands mid-dispatch.
func (h *Hub[S]) subscribers() []func(S) {
	h.subsMu.Lock()
	defer h.subsMu.Unlock()

	fns := make([]func(S), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	return fns
}
