package analysisapi

import (
	"context"
	"errors"
	"fmt"
)

// FallbackMessage is shown when no response was received from the service
const FallbackMessage = "Could not connect to the analysis service."

// APIError represents a non-2xx response from the analysis service
type APIError struct {
	StatusCode int
	Body       string
	// Detail is the body's detail field rendered as text, empty when absent
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("analysis service error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// TransportError wraps failures that happen around the request itself
type TransportError struct {
	Op  string
	Err error
	// responded is true when the service answered but the body was unusable
	responded bool
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseReceived reports whether the service sent a response
func (e *TransportError) ResponseReceived() bool { return e.responded }

// ReportError is returned when the service answered 2xx but flagged the
// submission as unanalyzable, e.g. on a syntax error.
type ReportError struct {
	Message string
}

func (e *ReportError) Error() string { return e.Message }

// ErrorMessage converts a submission error into the text shown to the user.
// In priority order: the response's detail field, the transport-level error
// text, then FallbackMessage when nothing was received at all.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return apiErr.Error()
	}

	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Message != "" {
		return reportErr.Message
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if transportErr.ResponseReceived() {
			return transportErr.Error()
		}
		return FallbackMessage
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FallbackMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}
