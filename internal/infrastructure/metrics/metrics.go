package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics counts sync runs, written rows and pushed orders.
type SyncMetrics struct {
	SyncRunsTotal       *prometheus.CounterVec
	SyncDuration        *prometheus.HistogramVec
	EntitiesSyncedTotal *prometheus.CounterVec
	UnresolvedRefsTotal *prometheus.CounterVec
	OrdersPushedTotal   *prometheus.CounterVec
	VendorRequestsTotal *prometheus.CounterVec
}

// NewSyncMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)
	return &SyncMetrics{
		SyncRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petpooja_sync_runs_total",
				Help: "Sync attempts by type and terminal status",
			},
			[]string{"sync_type", "status"},
		),
		SyncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "petpooja_sync_duration_seconds",
				Help:    "Wall time of a sync attempt",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
			[]string{"sync_type"},
		),
		EntitiesSyncedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petpooja_entities_synced_total",
				Help: "Rows upserted from vendor payloads by entity type",
			},
			[]string{"entity"},
		),
		UnresolvedRefsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petpooja_unresolved_references_total",
				Help: "Vendor references that did not resolve to a row of the same pass",
			},
			[]string{"kind"},
		),
		OrdersPushedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petpooja_orders_pushed_total",
				Help: "Orders submitted to the vendor by outcome",
			},
			[]string{"outcome"},
		),
		VendorRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petpooja_vendor_requests_total",
				Help: "Outbound vendor calls by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
	}
}

func (m *SyncMetrics) ObserveSync(syncType, status string, started time.Time) {
	m.SyncRunsTotal.WithLabelValues(syncType, status).Inc()
	m.SyncDuration.WithLabelValues(syncType).Observe(time.Since(started).Seconds())
}

func (m *SyncMetrics) AddEntities(counts map[string]int) {
	for entity, n := range counts {
		m.EntitiesSyncedTotal.WithLabelValues(entity).Add(float64(n))
	}
}
