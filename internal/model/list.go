package model

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

// ListStore defines persistence operations for lists.
type ListStore interface {
	All(ctx context.Context) ([]ListRow, error)
	Create(ctx context.Context, list ListRow) error
	GetByUUID(ctx context.Context, uuid string) (ListRow, error)
	Exists(ctx context.Context, uuid string) (bool, error)
	UpdateDetails(ctx context.Context, uuid string, title string, description, colorHex *string) error
	UpdateTaskUUIDs(ctx context.Context, uuid string, taskUUIDs *string) error
}

// ListRow is the persisted form of a list. Reference collections are JSON arrays of UUID strings.
type ListRow struct {
	UUID                    string
	Title                   string
	Description             *string
	ColorHex                *string
	TaskUUIDs               *string
	ParentListUUID          *string
	SubListUUIDs            *string
	SharedWithUserUUIDs     *string
	CreationInformationUUID string
}

// List is the decoded form of a ListRow. A nil collection is persisted as NULL.
type List struct {
	UUID                    uuid.UUID
	Title                   string
	Description             *string
	ColorHex                *string
	TaskUUIDs               []uuid.UUID
	ParentListUUID          *uuid.UUID
	SubListUUIDs            []uuid.UUID
	SharedWithUserUUIDs     []uuid.UUID
	CreationInformationUUID uuid.UUID
}

// Row encodes the list for persistence.
func (l List) Row() (ListRow, error) {
	taskUUIDs, err := EncodeUUIDs(l.TaskUUIDs)
	if err != nil {
		return ListRow{}, fmt.Errorf("failed to encode task uuids: %w", err)
	}
	subListUUIDs, err := EncodeUUIDs(l.SubListUUIDs)
	if err != nil {
		return ListRow{}, fmt.Errorf("failed to encode sub list uuids: %w", err)
	}
	sharedWith, err := EncodeUUIDs(l.SharedWithUserUUIDs)
	if err != nil {
		return ListRow{}, fmt.Errorf("failed to encode shared user uuids: %w", err)
	}

	var parent *string
	if l.ParentListUUID != nil {
		s := l.ParentListUUID.String()
		parent = &s
	}

	return ListRow{
		UUID:                    l.UUID.String(),
		Title:                   l.Title,
		Description:             l.Description,
		ColorHex:                l.ColorHex,
		TaskUUIDs:               taskUUIDs,
		ParentListUUID:          parent,
		SubListUUIDs:            subListUUIDs,
		SharedWithUserUUIDs:     sharedWith,
		CreationInformationUUID: l.CreationInformationUUID.String(),
	}, nil
}

// ListFromRow decodes a persisted list.
func ListFromRow(row ListRow) (List, error) {
	id, err := validate.ParseUUID(row.UUID)
	if err != nil {
		return List{}, validate.WithField(err, "uuid")
	}
	infoID, err := validate.ParseUUID(row.CreationInformationUUID)
	if err != nil {
		return List{}, validate.WithField(err, "creationInformationUuid")
	}

	list := List{
		UUID:                    id,
		Title:                   row.Title,
		Description:             row.Description,
		ColorHex:                row.ColorHex,
		CreationInformationUUID: infoID,
	}

	if row.ParentListUUID != nil {
		parent, err := validate.ParseUUID(*row.ParentListUUID)
		if err != nil {
			return List{}, validate.WithField(err, "parentListUuid")
		}
		list.ParentListUUID = &parent
	}
	if list.TaskUUIDs, err = DecodeUUIDs(row.TaskUUIDs); err != nil {
		return List{}, validate.WithField(err, "taskUuids")
	}
	if list.SubListUUIDs, err = DecodeUUIDs(row.SubListUUIDs); err != nil {
		return List{}, validate.WithField(err, "subListUuids")
	}
	if list.SharedWithUserUUIDs, err = DecodeUUIDs(row.SharedWithUserUUIDs); err != nil {
		return List{}, validate.WithField(err, "sharedWithUserUuids")
	}

	return list, nil
}

// EncodeUUIDs renders ids as a compact JSON array. A nil slice encodes to nil.
func EncodeUUIDs(ids []uuid.UUID) (*string, error) {
	if ids == nil {
		return nil, nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

// DecodeUUIDs parses a JSON array of UUID strings. A nil text decodes to nil.
func DecodeUUIDs(text *string) ([]uuid.UUID, error) {
	if text == nil {
		return nil, nil
	}
	return validate.UUIDCollection(*text)
}

// CreateListInput contains parameters to create a list.
// Collections are JSON arrays of UUID strings.
type CreateListInput struct {
	Title               string  `json:"title"`
	Description         *string `json:"description"`
	ColorHex            *string `json:"colorHex" validate:"omitnil,colorhex"`
	TaskUUIDs           *string `json:"taskUuids" validate:"omitnil,uuidjson"`
	ParentListUUID      *string `json:"parentListUuid" validate:"omitnil,uuidtext"`
	SubListUUIDs        *string `json:"subListUuids" validate:"omitnil,uuidjson"`
	SharedWithUserUUIDs *string `json:"sharedWithUserUuids" validate:"omitnil,uuidjson"`
}

// UpdateListInput contains the mutable list fields. A nil field keeps the stored value.
type UpdateListInput struct {
	UUID        string  `json:"uuid" validate:"uuidtext"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ColorHex    *string `json:"colorHex" validate:"omitnil,colorhex"`
}

// AddTaskInput links an existing task to a list.
type AddTaskInput struct {
	LastUpdatedByUserUUID string `json:"lastUpdatedByUserUuid" validate:"uuidtext"`
	ParentListUUID        string `json:"parentListUuid" validate:"uuidtext"`
	TaskUUID              string `json:"taskUuid" validate:"uuidtext"`
}
