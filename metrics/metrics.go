// Package metrics provides Prometheus metrics for the component catalog.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"componentcreator/catalog"
)

// Query outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	// Workbook metrics
	WorkbookLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_workbook_load_duration_seconds",
			Help:    "Time taken to read and index the component workbook",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	CatalogRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_rows",
			Help: "Number of rows loaded per catalog table",
		},
		[]string{"table"},
	)

	// Query metrics
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Total number of catalog queries",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordLoad publishes the size of a freshly loaded catalog.
func RecordLoad(stats catalog.Stats, took time.Duration) {
	WorkbookLoadDuration.Observe(took.Seconds())
	CatalogRows.WithLabelValues("components").Set(float64(stats.Components))
	CatalogRows.WithLabelValues("bom").Set(float64(stats.BOMRows))
	CatalogRows.WithLabelValues("materials").Set(float64(stats.Materials))
}

// ObserveQuery counts one catalog query.
func ObserveQuery(operation, outcome string) {
	QueriesTotal.WithLabelValues(operation, outcome).Inc()
}
