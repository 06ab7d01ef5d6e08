package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

type Task struct {
	taskStore model.TaskStore
	listStore model.ListStore
	tx        model.Transactor
	infos     *CreationInformation
	tags      *Tag
	logger    *logger.Logger
}

func NewTask(
	taskStore model.TaskStore,
	listStore model.ListStore,
	tx model.Transactor,
	infos *CreationInformation,
	tags *Tag,
	logger *logger.Logger,
) *Task {
	return &Task{
		taskStore: taskStore,
		listStore: listStore,
		tx:        tx,
		infos:     infos,
		tags:      tags,
		logger:    logger,
	}
}

func (s *Task) AllTasks(ctx context.Context) ([]model.TaskRow, error) {
	tasks, err := s.taskStore.All(ctx)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks", "error", err.Error())
		return nil, model.NewOperationError(model.MsgInternalError, fmt.Errorf("failed to list tasks: %w", err))
	}

	return tasks, nil
}

// TasksByList returns the tasks whose parent is listUUID.
func (s *Task) TasksByList(ctx context.Context, listUUID string) ([]model.TaskRow, error) {
	if err := validate.UUID(listUUID); err != nil {
		return nil, model.NewOperationError(model.MsgInternalError, validate.WithField(err, "listUuid"))
	}

	tasks, err := s.taskStore.GetByParentList(ctx, listUUID)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks by list",
			"list_uuid", listUUID,
			"error", err.Error())
		return nil, model.NewOperationError(model.MsgInternalError, fmt.Errorf("failed to list tasks by list: %w", err))
	}

	return tasks, nil
}

// moveToList makes listUUID the task's parent and returns the previous parent, if any.
func (s *Task) moveToList(ctx context.Context, taskUUID string, listUUID string) (*string, error) {
	task, err := s.taskStore.GetByUUID(ctx, taskUUID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, &model.ReferenceNotFoundError{Kind: model.KindTask, UUID: taskUUID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.taskStore.UpdateParentList(ctx, taskUUID, listUUID); err != nil {
		return nil, err
	}

	return task.ParentListUUID, nil
}

// CreateTask creates a task with its own creation information.
// Tags and the parent list must already exist. A missing or unknown priority becomes model.DefaultPriority.
func (s *Task) CreateTask(ctx context.Context, infoInput model.CreateCreationInformationInput, input model.CreateTaskInput) (model.TaskRow, error) {
	s.logger.Debug("Task service: creating task",
		"creator_user_uuid", infoInput.CreatorUserUUID)

	if err := validate.Struct(infoInput); err != nil {
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotCreated, err)
	}
	if err := validate.Struct(input); err != nil {
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotCreated, err)
	}

	tagIDs, err := model.DecodeUUIDs(input.TagUUIDs)
	if err != nil {
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotCreated, validate.WithField(err, "tagUuids"))
	}

	var saved model.TaskRow
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		tagUUIDs := make([]string, 0, len(tagIDs))
		for _, id := range tagIDs {
			if err := requireExists(ctx, s.tags.TagExists, model.KindTag, id.String()); err != nil {
				return err
			}
			tagUUIDs = append(tagUUIDs, id.String())
		}

		var parent *string
		if input.ParentListUUID != nil {
			if err := requireExists(ctx, s.listStore.Exists, model.KindList, *input.ParentListUUID); err != nil {
				return err
			}
			p := *input.ParentListUUID
			parent = &p
		}

		taskUUID := uuid.NewString()

		info, err := s.infos.CreateCreationInformation(ctx, infoInput)
		if err != nil {
			return err
		}

		task := model.TaskRow{
			UUID:                    taskUUID,
			Content:                 input.Content,
			Priority:                model.ParsePriority(input.Priority),
			TagUUIDs:                tagUUIDs,
			IsComplete:              input.IsComplete != nil && *input.IsComplete,
			ParentListUUID:          parent,
			CreationInformationUUID: info.UUID,
		}
		if err := s.taskStore.Create(ctx, task); err != nil {
			return err
		}

		saved, err = readBack(ctx, s.taskStore.GetByUUID, model.KindTask, taskUUID)
		return err
	})
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"creator_user_uuid", infoInput.CreatorUserUUID,
			"error", err.Error())
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotCreated, err)
	}

	s.logger.Info("Task service: task created",
		"uuid", saved.UUID,
		"priority", saved.Priority.String())

	return saved, nil
}

// GetTaskByUUID returns nil when no task has the given UUID.
func (s *Task) GetTaskByUUID(ctx context.Context, uuid string) (*model.TaskRow, error) {
	return getOptional(ctx, s.taskStore.GetByUUID, uuid)
}

func (s *Task) TaskExists(ctx context.Context, uuid string) (bool, error) {
	found, err := s.taskStore.Exists(ctx, uuid)
	if err != nil {
		return false, fmt.Errorf("failed to check task existence: %w", err)
	}
	return found, nil
}
