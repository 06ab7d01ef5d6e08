package model

import (
	"context"
)

// TaskStore defines persistence operations for tasks and their tag links.
type TaskStore interface {
	All(ctx context.Context) ([]TaskRow, error)
	// Create inserts the task and one task_tags row per tag, in order.
	Create(ctx context.Context, task TaskRow) error
	GetByUUID(ctx context.Context, uuid string) (TaskRow, error)
	GetByParentList(ctx context.Context, listUUID string) ([]TaskRow, error)
	Exists(ctx context.Context, uuid string) (bool, error)
	UpdateParentList(ctx context.Context, uuid string, listUUID string) error
}

// Priority is the urgency of a task.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

// DefaultPriority applies when a priority is missing or out of range.
const DefaultPriority = PriorityLow

// ParsePriority maps an optional raw value onto a Priority.
func ParsePriority(raw *int) Priority {
	if raw == nil {
		return DefaultPriority
	}
	p := Priority(*raw)
	if !p.Valid() {
		return DefaultPriority
	}
	return p
}

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityNormal:
		return "NORMAL"
	case PriorityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// TaskRow is a persisted task. TagUUIDs come from the task_tags join table in position order.
type TaskRow struct {
	UUID                    string
	Content                 string
	Priority                Priority
	TagUUIDs                []string
	IsComplete              bool
	ParentListUUID          *string
	CreationInformationUUID string
}

// CreateTaskInput contains parameters to create a task.
// TagUUIDs is a JSON array of tag UUID strings.
type CreateTaskInput struct {
	Content        string  `json:"content"`
	Priority       *int    `json:"priority"`
	TagUUIDs       *string `json:"tagUuids" validate:"omitnil,uuidjson"`
	ParentListUUID *string `json:"parentListUuid" validate:"omitnil,uuidtext"`
	IsComplete     *bool   `json:"isComplete"`
}
