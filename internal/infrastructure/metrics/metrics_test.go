package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSyncMetricsCountRunsAndEntities(t *testing.T) {
	m := NewSyncMetrics(prometheus.NewRegistry())

	m.ObserveSync("menu", "success", time.Now())
	m.ObserveSync("menu", "failed", time.Now())
	m.ObserveSync("menu", "success", time.Now())
	m.AddEntities(map[string]int{"items": 3, "categories": 1})
	m.AddEntities(map[string]int{"items": 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SyncRunsTotal.WithLabelValues("menu", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRunsTotal.WithLabelValues("menu", "failed")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.EntitiesSyncedTotal.WithLabelValues("items")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesSyncedTotal.WithLabelValues("categories")))
}
