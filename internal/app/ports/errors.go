package ports

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrNotStarted = errors.New("game not started")
)

// APIError is the uniform failure value surfaced by the remote game client.
// Status is set only when the remote answered with an HTTP status.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}
