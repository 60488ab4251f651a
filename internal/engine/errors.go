package engine

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for the pipeline. Compare with errors.Is.
var (
	// ErrUserAbsent indicates the detail endpoint had no usable record for an id.
	ErrUserAbsent = constError("user detail absent")

	// ErrTokenCycle indicates the list endpoint returned a continuation token already seen in this run.
	ErrTokenCycle = constError("continuation token repeated")

	// ErrPageLimit indicates pagination stopped at the configured page cap.
	ErrPageLimit = constError("page limit reached")
)

// FailureKind classifies a fetch failure.
type FailureKind int

const (
	// TransportFailure is a network, connection or HTTP status error.
	TransportFailure FailureKind = iota
	// DecodeFailure is a response body that does not parse into the expected shape.
	DecodeFailure
)

// String returns the log label for a FailureKind.
func (k FailureKind) String() string {
	switch k {
	case TransportFailure:
		return "transport"
	case DecodeFailure:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// FetchError is returned by ListFetcher and DetailFetcher implementations when a call fails.
type FetchError struct {
	Kind FailureKind

	// Op names the call, e.g. "list" or "detail".
	Op string

	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failure for %s (status %d): %v", e.Op, e.Kind, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failure for %s: %v", e.Op, e.Kind, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FailureKindOf returns the kind of the FetchError in err's chain.
// The second result is false when err carries no FetchError.
func FailureKindOf(err error) (FailureKind, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind, true
	}
	return 0, false
}

// IsTransportFailure reports whether err is a transport failure.
func IsTransportFailure(err error) bool {
	kind, ok := FailureKindOf(err)
	return ok && kind == TransportFailure
}

// IsDecodeFailure reports whether err is a decode failure.
func IsDecodeFailure(err error) bool {
	kind, ok := FailureKindOf(err)
	return ok && kind == DecodeFailure
}
