package usgs

import (
	"errors"
	"fmt"
)

// ErrTransport wraps connectivity and IO faults raised by the underlying
// HTTP client, including timeouts and cancelled contexts.
var ErrTransport = errors.New("transport error")

// StatusError reports a non-200 response from the event service. The body is
// not read; the numeric status is all the caller gets.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.Code)
}
