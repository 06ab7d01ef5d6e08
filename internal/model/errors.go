package model

import (
	"errors"
	"fmt"

	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

// ErrNotFound is returned by stores when a lookup by UUID matches no row.
var ErrNotFound = errors.New("not found")

// ErrorDetailsKey names the extension that carries the cause of a failed operation.
const ErrorDetailsKey = "error_details"

// Stable operation failure messages surfaced to API callers.
const (
	MsgInternalError                 = "Internal error"
	MsgUserNotCreated                = "User not created"
	MsgCreationInformationNotCreated = "Creation information not created"
	MsgCreationInformationNotUpdated = "Creation information not updated"
	MsgListNotCreated                = "List not created"
	MsgListNotUpdated                = "List not updated"
	MsgTaskNotCreated                = "Task not created"
	MsgTaskNotAdded                  = "Task not added"
	MsgTagNotCreated                 = "Tag not created"
)

// ValidationError reports malformed input such as a bad UUID, color hex or JSON collection.
type ValidationError = validate.FormatError

// EntityKind names a persisted entity type in error messages.
type EntityKind string

const (
	KindUser                EntityKind = "user"
	KindCreationInformation EntityKind = "creation information"
	KindList                EntityKind = "list"
	KindTask                EntityKind = "task"
	KindTag                 EntityKind = "tag"
)

// ReferenceNotFoundError is returned when a referenced UUID does not resolve to a row of the expected kind.
type ReferenceNotFoundError struct {
	Kind EntityKind
	UUID string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with uuid '%s' does not exist", e.Kind, e.UUID)
}

// InconsistencyError is returned when stored state contradicts what was written.
// With no Reason it means a row that was just written cannot be read back.
// Reason is plain text so that causes such as a *ValidationError on stored data do not leak into the chain.
type InconsistencyError struct {
	Kind   EntityKind
	UUID   string
	Reason string
}

func (e *InconsistencyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("stored %s '%s' is inconsistent: %s", e.Kind, e.UUID, e.Reason)
	}
	return fmt.Sprintf("%s '%s' was written but could not be read back", e.Kind, e.UUID)
}

// OperationError wraps the cause of a failed service operation with a stable message.
type OperationError struct {
	Message string
	Err     error
}

// NewOperationError wraps err with msg. A nil err yields a nil error.
func NewOperationError(msg string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.Message == msg {
		return err
	}
	return &OperationError{Message: msg, Err: err}
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Details returns the cause string exposed to API callers.
func (e *OperationError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
