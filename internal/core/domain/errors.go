package domain

import (
	"errors"
	"fmt"
)

var ErrNoToken = errors.New("missing bearer token")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")
var ErrProfileNotFound = errors.New("profile not found")
var ErrRecordNotFound = errors.New("medical record not found")
var ErrInvalidUserID = errors.New("user_id must be a valid UUID")
var ErrDecryptFailed = errors.New("field decryption failed")
var ErrProvisioningIncomplete = errors.New("identity backend returned no user")

// BackendError carries a rejection message from the identity or storage
// backend. These surface to clients as 400 with the backend's own message,
// matching the pass-through contract of the service.
type BackendError struct {
	Op      string
	Message string
}

func (e *BackendError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewBackendError wraps a backend rejection for the given operation.
func NewBackendError(op, message string) *BackendError {
	return &BackendError{Op: op, Message: message}
}
