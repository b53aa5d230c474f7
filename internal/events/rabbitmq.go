package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher sends events to a durable topic exchange and waits for
// the broker's confirm.
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string

	acks <-chan amqp.Confirmation
	mu   sync.Mutex // confirms are matched in order
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange, acks: acks}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	seq := p.ch.GetNextPublishSeqNo()
	if err := p.ch.PublishWithContext(ctx, p.exchange, e.RoutingKey(), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    fmt.Sprintf("%s-%d", e.Type, e.At.UnixNano()),
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"x-source": "pos-service"},
		Body:         body,
	}); err != nil {
		return err
	}
	return awaitConfirm(ctx, p.acks, seq)
}

// awaitConfirm waits for the confirm of delivery tag seq. Confirms for
// earlier tags belong to publishes that gave up waiting and are skipped.
func awaitConfirm(ctx context.Context, acks <-chan amqp.Confirmation, seq uint64) error {
	for {
		select {
		case conf, ok := <-acks:
			if !ok {
				return errors.New("rabbitmq channel closed before confirm")
			}
			if conf.DeliveryTag < seq {
				continue
			}
			if conf.Ack {
				return nil
			}
			return fmt.Errorf("publish NACK from broker (tag %d)", conf.DeliveryTag)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
