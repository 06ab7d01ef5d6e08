package model

import "context"

// TagStore defines persistence operations for tags.
type TagStore interface {
	All(ctx context.Context) ([]TagRow, error)
	Create(ctx context.Context, tag TagRow) error
	GetByUUID(ctx context.Context, uuid string) (TagRow, error)
	Exists(ctx context.Context, uuid string) (bool, error)
}

// TagRow is a persisted tag.
type TagRow struct {
	UUID                    string
	Title                   string
	CreationInformationUUID string
}

// CreateTagInput contains parameters to create a tag.
type CreateTagInput struct {
	Title string `json:"title" validate:"required"`
}
