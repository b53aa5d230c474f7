package order

import (
	"strings"
	"time"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

// Status is the one lifecycle shared by the register and the kitchen. Each
// of those views renders it with its own labels.
type Status string

const (
	StatusPendingPrep Status = "pending_prep"
	StatusReady       Status = "ready"
	StatusDelivered   Status = "delivered"
	// StatusClosed only comes from records written by the legacy kitchen
	// flow. Nothing transitions into it; it behaves like delivered.
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPendingPrep: {StatusReady, StatusCancelled},
	StatusReady:       {StatusDelivered, StatusPendingPrep, StatusCancelled},
}

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusPendingPrep, StatusReady, StatusDelivered, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusClosed || s == StatusCancelled
}

// Completed reports delivered-like terminal states.
func (s Status) Completed() bool {
	return s == StatusDelivered || s == StatusClosed
}

// ParseStatus accepts the canonical names in any case, plus "prep" as
// stored by older records.
func ParseStatus(s string) (Status, bool) {
	v := Status(strings.ToLower(strings.TrimSpace(s)))
	if v == "prep" {
		return StatusPendingPrep, true
	}
	return v, v.Valid()
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the order to the given status. Asking for the current
// status is a no-op and reports changed=false. A reason is only stored for
// cancellations. Items, total and payment are never touched.
func (o *Order) Transition(to Status, reason string, at time.Time) (changed bool, err error) {
	if !to.Valid() {
		return false, apperr.ErrInvalidTransition.With("unknown status %q", to)
	}
	if o.Status == to {
		return false, nil
	}
	if to == StatusCancelled && o.Status.Completed() {
		return false, apperr.ErrInvalidTransition.With("order %d was already %s and cannot be cancelled", o.NumberInRegister, o.Status)
	}
	if o.Status.Terminal() {
		return false, apperr.ErrOrderAlreadyTerminal.With("order %d is already %s", o.NumberInRegister, o.Status)
	}
	if !CanTransition(o.Status, to) {
		return false, apperr.ErrInvalidTransition.With("cannot move order %d from %s to %s", o.NumberInRegister, o.Status, to)
	}

	o.Status = to
	if to == StatusCancelled {
		o.CancelReason = strings.TrimSpace(reason)
	}
	o.UpdatedAt = at
	return true, nil
}
