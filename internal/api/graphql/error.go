package graphql

import (
	"errors"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

// Error codes exposed under extensions.code.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
	CodePersistence       = "PERSISTENCE_ERROR"
)

// apiError is what resolvers hand back to graphql-go. Its Error text becomes the
// response message and Extensions populates the error's extensions object.
type apiError struct {
	message string
	code    string
	details string
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) Extensions() map[string]any {
	return map[string]any{
		"code":                e.code,
		model.ErrorDetailsKey: e.details,
	}
}

func handleError(err error) error {
	if err == nil {
		return nil
	}

	msg := model.MsgInternalError
	details := err.Error()

	var opErr *model.OperationError
	if errors.As(err, &opErr) {
		msg = opErr.Message
		details = opErr.Details()
	}

	return &apiError{message: msg, code: errorCode(err, opErr != nil), details: details}
}

func errorCode(err error, fromOperation bool) string {
	var (
		validationErr   *model.ValidationError
		refErr          *model.ReferenceNotFoundError
		inconsistentErr *model.InconsistencyError
	)

	switch {
	case errors.As(err, &validationErr):
		return CodeValidation
	case errors.As(err, &refErr):
		return CodeReferenceNotFound
	case errors.Is(err, model.ErrNotFound):
		return CodeNotFound
	case errors.As(err, &inconsistentErr):
		return CodeInternal
	case fromOperation:
		return CodePersistence
	default:
		return CodeInternal
	}
}
