package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

// clock returns the current time in the precision the store keeps.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// readBack loads a row that was just written. A miss means the write was lost, not that the row is absent.
func readBack[T any](ctx context.Context, get func(context.Context, string) (T, error), kind model.EntityKind, uuid string) (T, error) {
	row, err := get(ctx, uuid)
	if errors.Is(err, model.ErrNotFound) {
		var zero T
		return zero, &model.InconsistencyError{Kind: kind, UUID: uuid}
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read back %s: %w", kind, err)
	}
	return row, nil
}

func getOptional[T any](ctx context.Context, get func(context.Context, string) (T, error), uuid string) (*T, error) {
	row, err := get(ctx, uuid)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, model.NewOperationError(model.MsgInternalError, err)
	}
	return &row, nil
}

// requireExists turns a failed existence predicate into a ReferenceNotFoundError.
func requireExists(ctx context.Context, exists func(context.Context, string) (bool, error), kind model.EntityKind, uuid string) error {
	found, err := exists(ctx, uuid)
	if err != nil {
		return err
	}
	if !found {
		return &model.ReferenceNotFoundError{Kind: kind, UUID: uuid}
	}
	return nil
}
