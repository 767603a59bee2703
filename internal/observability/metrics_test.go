package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.IncidentsCleared.Inc()
	a.StatsCache.WithLabelValues("hit").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.IncidentsCleared))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.IncidentsCleared))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.StatsCache.WithLabelValues("hit")))
}
