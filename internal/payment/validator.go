// Package payment decides whether a sale can be submitted and how much
// change is owed. It is pure and has no storage.
package payment

import (
	"strings"

	"github.com/MikeMC777/caja-pos/internal/money"
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
)

// ParseMethod normalizes a caller supplied method. Anything unrecognized
// (including the register UI's Spanish labels when misspelled) falls back
// to cash.
func ParseMethod(s string) Method {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transfer", "transferencia":
		return MethodTransfer
	default:
		return MethodCash
	}
}

type Result struct {
	Accepted bool        `json:"accepted"`
	Change   money.Money `json:"change"`
}

// Validate is the single gate for submitting a sale: an empty total is never
// accepted, otherwise amountPaid must cover the total and the change is the
// difference. Cash and transfer share the same rule; unknown methods are
// judged as cash.
func Validate(method Method, total, amountPaid money.Money) Result {
	if total <= 0 {
		return Result{}
	}
	if amountPaid < total {
		return Result{}
	}
	return Result{Accepted: true, Change: amountPaid.Sub(total)}
}
