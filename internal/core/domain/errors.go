package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
)

// Validation message ids. They double as translation keys for the HTTP layer.
const (
	MsgTitleRequired       = "titleRequired"
	MsgColorRequired       = "colorRequired"
	MsgProjectRequired     = "projectRequired"
	MsgProjectReactivation = "projectReactivation"
	MsgInvalidStatus       = "invalidStatus"
	MsgInvalidPriority     = "invalidPriority"
	MsgInvalidDueDate      = "invalidDueDate"
	MsgInvalidDateRange    = "invalidDateRange"
	MsgEmailRequired       = "emailRequired"
	MsgEmailTaken          = "emailTaken"
	MsgPasswordTooShort    = "passwordTooShort"
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field     string
	MessageID string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.MessageID)
}

func NewValidationError(field, messageID string) error {
	return &ValidationError{Field: field, MessageID: messageID}
}

// StorageError wraps a persistence gateway failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// AsValidationError extracts the *ValidationError wrapped by err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
