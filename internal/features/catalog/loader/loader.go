package loader

import (
	"context"
	"sync"

	"shopfront/internal/core/logger"
	"shopfront/internal/core/metrics"
	"shopfront/internal/features/catalog/ports"
	catalogstore "shopfront/internal/features/catalog/store"

	"go.uber.org/zap"
)

// Loader is the asynchronous boundary between the product source and the
// catalog store. The fetch runs in a goroutine; its resolution is dispatched
// into the store only if no newer fetch has started and the loader has not
// been stopped in the meantime, so a stale response can never overwrite
// state that has moved on.
type Loader struct {
	store  *catalogstore.CatalogStore
	source ports.ProductSource
	log    *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// New creates a loader feeding the store from the source.
func New(store *catalogstore.CatalogStore, source ports.ProductSource) *Loader {
	return &Loader{
		store:  store,
		source: source,
		log:    logger.Named("catalog_loader"),
	}
}

// Load starts a fetch unless the catalog is already populated; the catalog
// is loaded exactly once per session and filter intents never trigger a
// re-fetch. Use Reload to force a refresh.
func (l *Loader) Load(ctx context.Context) {
	if l.store.Populated() {
		l.log.Debug("load suppressed, catalog already populated")
		return
	}
	l.start(ctx)
}

// Reload always starts a fetch, superseding any in-flight one.
func (l *Loader) Reload(ctx context.Context) {
	l.start(ctx)
}

// Stop abandons any in-flight fetch, for consumer teardown. A fetch that
// resolves after Stop dispatches nothing.
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loader) start(parent context.Context) {
	l.mu.Lock()
	if l.cancel != nil {
		// A newer fetch supersedes the in-flight one.
		l.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.generation++
	gen := l.generation
	l.mu.Unlock()

	l.store.BeginLoad()

	go l.fetch(ctx, gen)
}

func (l *Loader) fetch(ctx context.Context, gen uint64) {
	products, err := l.source.FetchProducts(ctx)

	// The stale check and the dispatch happen under the same lock, so a
	// superseded fetch can never slip its result in.
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.log.Debug("discarding stale fetch result", zap.Uint64("generation", gen))
		metrics.CatalogLoadsTotal.WithLabelValues("stale").Inc()
		return
	}
	l.cancel = nil

	if err != nil {
		l.log.Warn("catalog fetch failed", zap.Error(err))
		metrics.CatalogLoadsTotal.WithLabelValues("error").Inc()
		l.store.LoadFailed(err.Error())
		return
	}

	l.log.Info("catalog loaded", zap.Int("products", len(products)))
	metrics.CatalogLoadsTotal.WithLabelValues("success").Inc()
	l.store.LoadSucceeded(products)
}
