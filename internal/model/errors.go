package model

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so callers can tell a missing
// transcript apart from a quota error or a bad request. The upstream
// APIs stringify everything; we do not.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
	KindUpstream     Kind = "upstream_error"
	KindInvalidInput Kind = "invalid_input"
)

// Error is a tagged pipeline error. Op names the operation that failed
// ("youtube.video_info", "transcript.fetch", ...).
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a tagged error.
func E(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindUpstream for untagged errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// IsNotFound reports whether err is a tagged not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidInput reports whether err is a tagged bad-input error.
func IsInvalidInput(err error) bool { return KindOf(err) == KindInvalidInput }
