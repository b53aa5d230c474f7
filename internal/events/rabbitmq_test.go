package events

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitConfirmSkipsLateConfirms(t *testing.T) {
	acks := make(chan amqp.Confirmation, 4)

	// tag 1 timed out; its confirm shows up while tag 2 waits
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	require.ErrorIs(t, awaitConfirm(ctx, acks, 1), context.DeadlineExceeded)

	acks <- amqp.Confirmation{DeliveryTag: 1, Ack: false}
	acks <- amqp.Confirmation{DeliveryTag: 2, Ack: true}
	require.NoError(t, awaitConfirm(context.Background(), acks, 2))

	acks <- amqp.Confirmation{DeliveryTag: 3, Ack: false}
	err := awaitConfirm(context.Background(), acks, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NACK")
}

func TestAwaitConfirmClosedChannel(t *testing.T) {
	acks := make(chan amqp.Confirmation)
	close(acks)
	require.Error(t, awaitConfirm(context.Background(), acks, 1))
}
