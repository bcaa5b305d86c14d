package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountsTransitions(t *testing.T) {
	m := New()
	m.ObserveTransition("accept", nil)
	m.ObserveTransition("accept", nil)
	m.ObserveTransition("accept-suggestion", errors.New("no suggestion"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("accept", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("accept-suggestion", "error")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
		m.ObserveTransition("reject", nil)
		m.ObservePersist("appointments", time.Millisecond, nil)
		m.CredentialMigrated()
	})
}
