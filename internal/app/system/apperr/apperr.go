// Package apperr classifies request failures so handlers can map them to
// HTTP statuses without inspecting store internals.
//
// Any error that is not (or does not wrap) an *Error is Internal: it is
// logged server-side and reported to clients with a generic body.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is the failure class of an error.
type Kind uint8

const (
	Internal Kind = iota
	Invalid
	NotFound
	Conflict
)

// Error is a classified failure. Msg is safe to show to clients.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// New returns a classified error.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf returns the class of err, Internal when err is unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Status maps err to the HTTP status it should be answered with.
func Status(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
