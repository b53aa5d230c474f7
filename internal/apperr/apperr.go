// Package apperr is the structured failure taxonomy shared by the register,
// order and registry packages. Every failure carries a kind (what class of
// problem) and a code (which problem), and is matched with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindState      Kind = "state"
	KindNotFound   Kind = "not_found"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches on code so wrapped or re-messaged errors still compare equal
// to the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// With returns a copy of the sentinel carrying a more specific message.
func (e *Error) With(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidAmount       = &Error{KindValidation, "InvalidAmount", "amount must be zero or positive"}
	ErrInvalidOrder        = &Error{KindValidation, "InvalidOrder", "order is invalid"}
	ErrInsufficientPayment = &Error{KindValidation, "InsufficientPayment", "amount paid does not cover the total"}
	ErrInvalidInput        = &Error{KindValidation, "InvalidInput", "invalid input"}

	ErrRegisterAlreadyOpen  = &Error{KindState, "RegisterAlreadyOpen", "a cash register is already open"}
	ErrRegisterNotOpen      = &Error{KindState, "RegisterNotOpen", "no cash register is open"}
	ErrRegisterClosed       = &Error{KindState, "RegisterClosed", "cash register is closed"}
	ErrInvalidTransition    = &Error{KindState, "InvalidTransition", "status transition not allowed"}
	ErrOrderAlreadyTerminal = &Error{KindState, "OrderAlreadyTerminal", "order is already in a terminal status"}
	ErrConflict             = &Error{KindState, "Conflict", "resource already exists"}

	ErrNotFound = &Error{KindNotFound, "NotFound", "not found"}
)

// As extracts the structured error from a chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the kind of a structured error, or "" for anything else.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}
