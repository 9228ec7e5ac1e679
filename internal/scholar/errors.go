package scholar

import (
	"errors"
	"fmt"
)

// Common errors returned by the extraction pipeline.
var (
	// ErrInvalidArgument indicates malformed caller input. No network
	// activity has taken place when this is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNetwork indicates a transport-level failure (DNS, connection
	// reset, timeout). Retryable.
	ErrNetwork = errors.New("network error fetching citation page")

	// ErrBadStatus indicates a non-2xx HTTP response. Retryable.
	ErrBadStatus = errors.New("unexpected HTTP status from citation page")

	// ErrExhausted indicates the retry budget was spent without a
	// successful fetch. The extraction aborts and nothing is cached.
	ErrExhausted = errors.New("retry attempts exhausted")
)

// StatusError carries the HTTP status of a failed page fetch.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Unwrap makes StatusError match ErrBadStatus via errors.Is.
func (e *StatusError) Unwrap() error {
	return ErrBadStatus
}

// IsRetryable returns true for failures the retry controller absorbs:
// transport errors and non-2xx statuses.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrBadStatus)
}

// IsFatal returns true if the error terminated an extraction call.
func IsFatal(err error) bool {
	return errors.Is(err, ErrExhausted)
}

// IsInvalidArgument returns true for caller-input validation failures.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
