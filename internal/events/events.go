// Package events announces order lifecycle changes to the outside world.
// Publishing happens after the change is committed and is best effort.
package events

import (
	"context"
	"time"
)

type Type string

const (
	OrderCreated       Type = "order.created"
	OrderStatusChanged Type = "order.status_changed"
	RegisterOpened     Type = "register.opened"
	RegisterClosed     Type = "register.closed"
)

type Event struct {
	Type             Type      `json:"type"`
	OrderID          string    `json:"order_id,omitempty"`
	SessionID        string    `json:"register_session_id"`
	NumberInRegister int       `json:"number_in_register,omitempty"`
	Status           string    `json:"status,omitempty"`
	At               time.Time `json:"at"`
}

// RoutingKey is "order.<status>" for order events and the event type
// otherwise, so kitchen consumers can bind on "order.*".
func (e Event) RoutingKey() string {
	if e.OrderID != "" && e.Status != "" {
		return "order." + e.Status
	}
	return string(e.Type)
}

// Key partitions by register so one register's events stay ordered.
func (e Event) Key() string { return e.SessionID }

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
