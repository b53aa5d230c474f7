// Package register models one open-to-close lifecycle of the cash drawer:
// it scopes order numbering and reconciles counted cash against sales.
package register

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/money"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Counts maps a denomination (in money units) to how many bills or coins
// of it were counted.
type Counts map[int64]int

type Session struct {
	ID              string       `json:"id"`
	Status          Status       `json:"status"`
	OpenedAt        time.Time    `json:"opened_at"`
	ClosedAt        *time.Time   `json:"closed_at,omitempty"`
	OpenedBy        string       `json:"opened_by,omitempty"`
	ClosedBy        string       `json:"closed_by,omitempty"`
	OpeningAmount   money.Money  `json:"opening_amount"`
	OpeningCounts   Counts       `json:"opening_counts,omitempty"`
	ClosingAmount   *money.Money `json:"closing_amount,omitempty"`
	ClosingCounts   Counts       `json:"closing_counts,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	ClosingNotes    string       `json:"closing_notes,omitempty"`
	NextOrderNumber int          `json:"next_order_number"`

	// Set on close.
	Reconciliation *Reconciliation `json:"reconciliation,omitempty"`
}

type Reconciliation struct {
	ExpectedCash   money.Money  `json:"expected_cash"`
	Variance       int64        `json:"variance"`
	CountedCash    *money.Money `json:"counted_cash,omitempty"`
	TotalCash      money.Money  `json:"total_cash"`
	TotalTransfer  money.Money  `json:"total_transfer"`
	TotalSales     money.Money  `json:"total_sales"`
	TotalOrders    int          `json:"total_orders"`
	TotalCancelled int          `json:"total_cancelled"`
}

// Sale is what reconciliation needs to know about one order.
type Sale struct {
	Cash       bool
	AmountPaid money.Money
	Cancelled  bool
}

type OpenRequest struct {
	OpeningAmount int64
	Notes         string
	OpeningCounts Counts
	OpenedBy      string
}

type CloseRequest struct {
	ClosingAmount int64
	Notes         string
	ClosingCounts Counts
	ClosedBy      string
}

// Open starts a new session. The caller guarantees no other session is open.
func Open(req OpenRequest, at time.Time) (*Session, error) {
	amt, err := money.New(req.OpeningAmount)
	if err != nil {
		return nil, apperr.ErrInvalidAmount.With("opening amount cannot be negative")
	}
	if err := req.OpeningCounts.validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:              uuid.NewString(),
		Status:          StatusOpen,
		OpenedAt:        at,
		OpenedBy:        req.OpenedBy,
		OpeningAmount:   amt,
		OpeningCounts:   req.OpeningCounts,
		Notes:           strings.TrimSpace(req.Notes),
		NextOrderNumber: 1,
	}, nil
}

func (s *Session) IsOpen() bool { return s != nil && s.Status == StatusOpen }

// NextNumber hands out the next order number and advances the counter.
// Callers persist the order with that number before keeping the advanced
// session; see registry.Service.CreateOrder.
func (s *Session) NextNumber() (int, error) {
	if !s.IsOpen() {
		return 0, apperr.ErrRegisterClosed
	}
	n := s.NextOrderNumber
	s.NextOrderNumber++
	return n, nil
}

// Close computes the reconciliation for the given sales and marks the
// session closed. After this the numbering is frozen.
func (s *Session) Close(req CloseRequest, sales []Sale, at time.Time) error {
	if !s.IsOpen() {
		return apperr.ErrRegisterNotOpen
	}
	closing, err := money.New(req.ClosingAmount)
	if err != nil {
		return apperr.ErrInvalidAmount.With("closing amount cannot be negative")
	}
	if err := req.ClosingCounts.validate(); err != nil {
		return err
	}

	rec := Reconcile(s.OpeningAmount, closing, sales)
	if len(req.ClosingCounts) > 0 {
		counted := req.ClosingCounts.Total()
		rec.CountedCash = &counted
	}

	s.Status = StatusClosed
	s.ClosedAt = &at
	s.ClosedBy = req.ClosedBy
	s.ClosingAmount = &closing
	s.ClosingCounts = req.ClosingCounts
	s.ClosingNotes = strings.TrimSpace(req.Notes)
	s.Reconciliation = &rec
	return nil
}

// Reconcile: expected cash is the opening float plus what was paid in cash
// on orders that were not cancelled. Variance is counted minus expected.
func Reconcile(opening, closing money.Money, sales []Sale) Reconciliation {
	var rec Reconciliation
	for _, s := range sales {
		if s.Cancelled {
			rec.TotalCancelled++
			continue
		}
		rec.TotalOrders++
		rec.TotalSales = rec.TotalSales.Add(s.AmountPaid)
		if s.Cash {
			rec.TotalCash = rec.TotalCash.Add(s.AmountPaid)
		} else {
			rec.TotalTransfer = rec.TotalTransfer.Add(s.AmountPaid)
		}
	}
	rec.ExpectedCash = opening.Add(rec.TotalCash)
	rec.Variance = closing.Diff(rec.ExpectedCash)
	return rec
}

func (c Counts) validate() error {
	for denom, n := range c {
		if denom <= 0 {
			return apperr.ErrInvalidAmount.With("denomination %d must be positive", denom)
		}
		if n < 0 {
			return apperr.ErrInvalidAmount.With("count for denomination %d cannot be negative", denom)
		}
	}
	return nil
}

// Total is the cash value of the counted bills and coins.
func (c Counts) Total() money.Money {
	var t money.Money
	for d, n := range c {
		t = t.Add(money.Money(d).Mul(n))
	}
	return t
}

// Clone deep-copies the session so a caller can mutate it tentatively.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	if s.ClosedAt != nil {
		t := *s.ClosedAt
		cp.ClosedAt = &t
	}
	if s.ClosingAmount != nil {
		m := *s.ClosingAmount
		cp.ClosingAmount = &m
	}
	if s.Reconciliation != nil {
		r := *s.Reconciliation
		cp.Reconciliation = &r
	}
	cp.OpeningCounts = s.OpeningCounts.clone()
	cp.ClosingCounts = s.ClosingCounts.clone()
	return &cp
}

func (c Counts) clone() Counts {
	if c == nil {
		return nil
	}
	out := make(Counts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
