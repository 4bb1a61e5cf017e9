// Package apperrors defines the error taxonomy shared by the repository and
// service layers. Repositories surface NotFound and RemoteFailure only; the
// service layer adds PermissionDenied and InvalidState and re-wraps
// repository failures with an entity-specific message.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that branch on outcome.
type Kind int

const (
	// KindPermissionDenied means a role or ownership check failed.
	KindPermissionDenied Kind = iota + 1
	// KindNotFound means the id does not resolve, or resolves to a record
	// hidden from this actor where the contract is to report absence.
	KindNotFound
	// KindInvalidState means the operation is not valid for the record's
	// current soft-delete state.
	KindInvalidState
	// KindRemoteFailure means a network or store error; terminal for this
	// attempt, no automatic retry.
	KindRemoteFailure
)

func (k Kind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindRemoteFailure:
		return "remote_failure"
	}
	return "unknown"
}

// Error is a classified application error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PermissionDenied builds a permission error.
func PermissionDenied(format string, args ...any) *Error {
	return &Error{Kind: KindPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds an absence error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidState builds a soft-delete state conflict error.
func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// RemoteFailure wraps a store or network error with context.
func RemoteFailure(err error, format string, args ...any) *Error {
	return &Error{Kind: KindRemoteFailure, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or 0 when err carries no classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsPermissionDenied(err error) bool { return KindOf(err) == KindPermissionDenied }
func IsNotFound(err error) bool         { return KindOf(err) == KindNotFound }
func IsInvalidState(err error) bool     { return KindOf(err) == KindInvalidState }
func IsRemoteFailure(err error) bool    { return KindOf(err) == KindRemoteFailure }
