// Package money holds the fixed-precision amount used for every total,
// payment and change figure. Amounts are integers in the smallest currency
// unit and never go below zero.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrNegative = errors.New("amount cannot be negative")

// Money is a non-negative amount in the smallest currency unit.
type Money int64

// New rejects negative amounts.
func New(units int64) (Money, error) {
	if units < 0 {
		return 0, ErrNegative
	}
	return Money(units), nil
}

// FromDecimal converts an external decimal amount (JSON number or string)
// into Money, rounding half away from zero to whole units.
func FromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return 0, ErrNegative
	}
	r := d.Round(0)
	if r.GreaterThan(decimal.NewFromInt(maxUnits)) {
		return 0, fmt.Errorf("amount %s out of range", d.String())
	}
	return Money(r.IntPart()), nil
}

const maxUnits = int64(^uint64(0) >> 1)

func (m Money) Int64() int64 { return int64(m) }

func (m Money) IsZero() bool { return m <= 0 }

// Add saturates at the int64 ceiling.
func (m Money) Add(o Money) Money {
	s := m + o
	if s < m {
		return Money(maxUnits)
	}
	return s
}

// Sub saturates at zero.
func (m Money) Sub(o Money) Money {
	if o >= m {
		return 0
	}
	return m - o
}

// Mul multiplies by a quantity; non-positive quantities yield zero.
func (m Money) Mul(qty int) Money {
	if qty <= 0 || m <= 0 {
		return 0
	}
	if int64(m) > maxUnits/int64(qty) {
		return Money(maxUnits)
	}
	return m * Money(qty)
}

// Diff returns the signed difference m - o. Used for reconciliation
// variance, the only figure allowed to be negative.
func (m Money) Diff(o Money) int64 { return int64(m) - int64(o) }

func (m Money) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(m)) }

func (m Money) String() string { return m.Decimal().String() }

// Sum adds a list of amounts.
func Sum(ms ...Money) Money {
	var t Money
	for _, m := range ms {
		t = t.Add(m)
	}
	return t
}
