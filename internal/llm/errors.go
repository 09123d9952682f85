package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable indicates the narrative endpoint could not be reached.
	ErrServiceUnavailable = errors.New("narrative service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("narrative request timed out")

	// ErrCancelled indicates the caller gave up on the request before it
	// finished.
	ErrCancelled = errors.New("narrative request cancelled")

	// ErrBadStatus indicates the endpoint answered with a non-success status.
	ErrBadStatus = errors.New("narrative service returned an error status")

	// ErrInvalidOutput indicates the response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid narrative output format")
)

// ServiceError is returned when the endpoint call itself fails: a non-2xx
// status, an unreachable host, or a timeout. StatusCode is 0 when no HTTP
// response was received.
type ServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("narrative service error: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("narrative service error: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when the endpoint answered but its
// payload is not the JSON document that was asked for. Raw holds the
// offending text for diagnosis.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed narrative response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func malformed(raw string, format string, args ...any) error {
	return &MalformedResponseError{
		Raw: raw,
		Err: fmt.Errorf("%w: %s", ErrInvalidOutput, fmt.Sprintf(format, args...)),
	}
}
