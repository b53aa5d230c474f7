package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OrdersCreated.WithLabelValues("cash").Inc()
	m.OrdersCreated.WithLabelValues("cash").Inc()
	m.RegisterOpen.Set(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersCreated.WithLabelValues("cash")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegisterOpen))
}
