package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport indicates the request never produced a response
	// (connection failure, timeout, cancelled context).
	ErrTransport = errors.New("remote store transport failure")
	// ErrRemoteStatus indicates the remote store answered with a non-2xx status.
	ErrRemoteStatus = errors.New("remote store returned non-success status")
)

// StatusError carries a non-2xx response of the remote store.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("remote store http %d: %s", e.StatusCode, body)
}

// Is reports whether target is ErrRemoteStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrRemoteStatus
}
