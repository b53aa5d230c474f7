package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	w *kafka.Writer
}

// NewKafkaPublisher takes a comma separated broker list.
func NewKafkaPublisher(brokersCSV, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:         kafka.TCP(splitBrokers(brokersCSV)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}}
}

func splitBrokers(csv string) []string {
	out := []string{}
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(e.Key()),
		Value:   data,
		Time:    time.Now().UTC(),
		Headers: []kafka.Header{{Key: "type", Value: []byte(e.Type)}},
	})
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }
