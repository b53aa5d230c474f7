package order

import (
	"strings"
	"time"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/money"
	"github.com/MikeMC777/caja-pos/internal/payment"
)

type Order struct {
	ID                string      `json:"id"`
	RegisterSessionID string      `json:"register_session_id"`
	NumberInRegister  int         `json:"number_in_register"`
	ReferenceName     string      `json:"reference_name"`
	Items             []Item      `json:"items"`
	Total             money.Money `json:"total"`
	Payment           Payment     `json:"payment"`
	Status            Status      `json:"status"`
	CancelReason      string      `json:"cancel_reason,omitempty"`
	CreatedBy         string      `json:"created_by,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Item is a line of an order. Name and price are snapshots taken when the
// order was rung up.
type Item struct {
	ProductID   int64       `json:"product_id"`
	ProductName string      `json:"product_name"`
	UnitPrice   money.Money `json:"unit_price"`
	Quantity    int         `json:"quantity"`
}

func (it Item) Subtotal() money.Money { return it.UnitPrice.Mul(it.Quantity) }

type Payment struct {
	Method     payment.Method `json:"method"`
	AmountPaid money.Money    `json:"amount_paid"`
	Change     money.Money    `json:"change"`
}

// Summary is the history row: enough to list an order without its items.
type Summary struct {
	ID                string         `json:"id"`
	RegisterSessionID string         `json:"register_session_id"`
	NumberInRegister  int            `json:"number_in_register"`
	ReferenceName     string         `json:"reference_name"`
	Status            Status         `json:"status"`
	Total             money.Money    `json:"total"`
	PaymentMethod     payment.Method `json:"payment_method"`
	FirstItemName     string         `json:"first_item_name"`
	MoreItems         int            `json:"more_items"`
	CreatedAt         time.Time      `json:"created_at"`
}

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// Query filters history listings. An empty SessionID lists across sessions.
type Query struct {
	SessionID string
	Limit     int
	Offset    int
}

func Total(items []Item) money.Money {
	var t money.Money
	for _, it := range items {
		t = t.Add(it.Subtotal())
	}
	return t
}

// Validate checks the parts of an order the caller supplies. It runs before
// any number is allocated.
func Validate(referenceName string, items []Item) error {
	if strings.TrimSpace(referenceName) == "" {
		return apperr.ErrInvalidOrder.With("reference name is required")
	}
	if len(items) == 0 {
		return apperr.ErrInvalidOrder.With("order must have at least one item")
	}
	for i, it := range items {
		if it.Quantity < 1 {
			return apperr.ErrInvalidOrder.With("item %d: quantity must be at least 1", i+1)
		}
		if it.UnitPrice < 0 {
			return apperr.ErrInvalidOrder.With("item %d: unit price cannot be negative", i+1)
		}
		if it.ProductID <= 0 && strings.TrimSpace(it.ProductName) == "" {
			return apperr.ErrInvalidOrder.With("item %d: product id or name is required", i+1)
		}
	}
	return nil
}

func (o *Order) Summary() Summary {
	s := Summary{
		ID:                o.ID,
		RegisterSessionID: o.RegisterSessionID,
		NumberInRegister:  o.NumberInRegister,
		ReferenceName:     o.ReferenceName,
		Status:            o.Status,
		Total:             o.Total,
		PaymentMethod:     o.Payment.Method,
		CreatedAt:         o.CreatedAt,
	}
	if len(o.Items) > 0 {
		s.FirstItemName = o.Items[0].ProductName
		s.MoreItems = len(o.Items) - 1
	}
	return s
}

// Clone copies the order including its items.
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	return &cp
}
