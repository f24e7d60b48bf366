// Error classification for calls against the ticketing backend.
// Every failure the client surfaces is an *Error with a Kind from the
// taxonomy below, so views decide what to do (retry, refetch, show
// field errors) with errors.As instead of string matching.
package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindConnection covers transport failures and malformed
	// responses: the backend was unreachable or unintelligible.
	// The operation is retryable with no state loss.
	KindConnection Kind = iota
	// KindValidation is a rejected payload with field-level detail.
	KindValidation
	// KindConflict means a requested seat was sold by another
	// terminal between selection and submission.  The caller must
	// refetch occupancy and reset its selection.
	KindConflict
	// KindAuth is a missing, expired or rejected credential.
	KindAuth
	// KindServer is any other backend-reported failure.
	KindServer
)

// String returns a short name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	default:
		return "server"
	}
}

// Error is the typed failure returned by every client method.
type Error struct {
	Kind    Kind
	Status  int               // HTTP status, 0 for transport failures
	Message string            // human-readable message, server-provided when available
	Fields  map[string]string // field-level validation messages
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(parts, "; "))
}

// Unwrap exposes the underlying transport error, when any.
func (e *Error) Unwrap() error { return e.cause }

// kindIs reports whether err is an *Error of the given kind.
func kindIs(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}

// IsConnection reports whether err is a transport-level failure.
func IsConnection(err error) bool { return kindIs(err, KindConnection) }

// IsValidation reports whether err is a payload rejection.
func IsValidation(err error) bool { return kindIs(err, KindValidation) }

// IsConflict reports whether err is a seat conflict.
func IsConflict(err error) bool { return kindIs(err, KindConflict) }

// IsAuth reports whether err is a credential failure.
func IsAuth(err error) bool { return kindIs(err, KindAuth) }

// Message returns the display message of an API error, or err.Error()
// for anything else.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
