package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. Registered on the default registry and served by
// promhttp alongside the Go runtime metrics.
var (
	ProductionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workshop_productions_total",
		Help: "Committed production events by product.",
	}, []string{"product"})

	UnitsProducedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workshop_units_produced_total",
		Help: "Units produced by product.",
	}, []string{"product"})

	StockMovementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workshop_stock_movements_total",
		Help: "Committed stock movements by type.",
	}, []string{"type"})

	InsufficientStockTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "workshop_insufficient_stock_total",
		Help: "Production requests rejected for insufficient stock.",
	})
)
