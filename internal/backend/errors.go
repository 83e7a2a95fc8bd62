package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// ErrorKind classifies backend failures.
type ErrorKind string

const (
	// KindUnavailable means the backend could not be reached or returned
	// a server-side failure. Callers should surface a try-again message.
	KindUnavailable ErrorKind = "unavailable"
	// KindTimeout means the call exceeded its deadline.
	KindTimeout ErrorKind = "timeout"
	// KindQuota means the backend rejected the call for rate or quota
	// reasons.
	KindQuota ErrorKind = "quota"
	// KindInvalid means the request itself was rejected (bad model name,
	// oversized prompt and similar).
	KindInvalid ErrorKind = "invalid"
)

// Error is the typed failure returned by backend calls.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Op names the failing operation, e.g. "generate".
	Op string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("backend %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Unavailable reports whether err is a backend error callers should treat
// as "try again later".
func Unavailable(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	return be.Kind == KindUnavailable || be.Kind == KindTimeout || be.Kind == KindQuota
}

// classify wraps an error from the Anthropic SDK into a typed *Error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Op: op, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindTimeout, Op: op, Err: err}
	}

	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 429:
			return &Error{Kind: KindQuota, Op: op, Err: err}
		case apierr.StatusCode >= 500:
			return &Error{Kind: KindUnavailable, Op: op, Err: err}
		case apierr.StatusCode >= 400:
			return &Error{Kind: KindInvalid, Op: op, Err: err}
		}
	}

	// Connection-level failures have no HTTP status.
	return &Error{Kind: KindUnavailable, Op: op, Err: err}
}
