package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BookingCounters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.BookingCreated("xbox")
	m.BookingCreated("xbox")
	m.SlotRejected("vr", "full")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("xbox")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotsRejectedTotal.WithLabelValues("vr", "full")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingCreated("xbox")
		m.SlotRejected("xbox", "full")
	})
}
