package model

import (
	"context"
	"time"
)

// CreationInformationStore defines persistence operations for audit metadata rows.
type CreationInformationStore interface {
	All(ctx context.Context) ([]CreationInformationRow, error)
	Create(ctx context.Context, info CreationInformationRow) error
	GetByUUID(ctx context.Context, uuid string) (CreationInformationRow, error)
	Exists(ctx context.Context, uuid string) (bool, error)
	// UpdateLastUpdated writes only the editor and the edit time.
	UpdateLastUpdated(ctx context.Context, uuid string, editorUUID string, at time.Time) error
}

// CreationInformationRow is the audit metadata owned 1:1 by a list, task or tag.
type CreationInformationRow struct {
	UUID                  string
	CreatorUserUUID       string
	CreationTime          time.Time
	LastUpdatedByUserUUID string
	LastUpdatedTime       time.Time
}

// NewCreationInformationRow returns a row whose editor and edit time start out equal to the creator and creation time.
func NewCreationInformationRow(uuid, creatorUUID string, now time.Time) CreationInformationRow {
	return CreationInformationRow{
		UUID:                  uuid,
		CreatorUserUUID:       creatorUUID,
		CreationTime:          now,
		LastUpdatedByUserUUID: creatorUUID,
		LastUpdatedTime:       now,
	}
}

// SetLastUpdated records an edit. The edit time never precedes CreationTime.
func (r *CreationInformationRow) SetLastUpdated(editorUUID string, now time.Time) {
	if now.Before(r.CreationTime) {
		now = r.CreationTime
	}
	r.LastUpdatedByUserUUID = editorUUID
	r.LastUpdatedTime = now
}

// CreateCreationInformationInput names the creator of a new entity.
type CreateCreationInformationInput struct {
	CreatorUserUUID string `json:"creatorUserUuid" validate:"uuidtext"`
}

// UpdateCreationInformationInput names the user performing an edit.
type UpdateCreationInformationInput struct {
	LastUpdatedByUserUUID string `json:"lastUpdatedByUserUuid" validate:"uuidtext"`
}
