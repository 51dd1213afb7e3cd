package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentsDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_intents_dispatched_total",
		Help: "Total number of intents dispatched, per store and intent",
	}, []string{"store", "intent"})

	DerivedViewRecomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "derived_view_recomputes_total",
		Help: "Total number of visible-product recomputations",
	})

	DerivedViewCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "derived_view_cache_hits_total",
		Help: "Total number of visible-product reads served from the memo",
	})

	CatalogLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_loads_total",
		Help: "Total number of catalog load attempts, per outcome",
	}, []string{"outcome"})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed at checkout",
	})
)
