package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingKey(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	e := Event{Type: OrderStatusChanged, OrderID: "o1", SessionID: "s1", Status: "ready", At: at}
	assert.Equal(t, "order.ready", e.RoutingKey())
	assert.Equal(t, "s1", e.Key())

	reg := Event{Type: RegisterClosed, SessionID: "s1", At: at}
	assert.Equal(t, "register.closed", reg.RoutingKey())
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, splitBrokers(""))
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	require.NoError(t, p.Publish(context.Background(), Event{Type: OrderCreated}))
	require.NoError(t, p.Close())
}
