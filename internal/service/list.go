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

type List struct {
	listStore model.ListStore
	tx        model.Transactor
	users     *User
	infos     *CreationInformation
	tasks     *Task
	logger    *logger.Logger
}

func NewList(
	listStore model.ListStore,
	tx model.Transactor,
	users *User,
	infos *CreationInformation,
	tasks *Task,
	logger *logger.Logger,
) *List {
	return &List{
		listStore: listStore,
		tx:        tx,
		users:     users,
		infos:     infos,
		tasks:     tasks,
		logger:    logger,
	}
}

func (s *List) AllLists(ctx context.Context) ([]model.ListRow, error) {
	lists, err := s.listStore.All(ctx)
	if err != nil {
		s.logger.Error("List service: failed to list lists", "error", err.Error())
		return nil, model.NewOperationError(model.MsgInternalError, fmt.Errorf("failed to list lists: %w", err))
	}

	return lists, nil
}

// CreateList creates a list with its own creation information.
// Every referenced task, list and user must already exist.
func (s *List) CreateList(ctx context.Context, infoInput model.CreateCreationInformationInput, input model.CreateListInput) (model.ListRow, error) {
	s.logger.Debug("List service: creating list",
		"creator_user_uuid", infoInput.CreatorUserUUID,
		"title", input.Title)

	if err := validate.Struct(infoInput); err != nil {
		return model.ListRow{}, model.NewOperationError(model.MsgListNotCreated, err)
	}
	if err := validate.Struct(input); err != nil {
		return model.ListRow{}, model.NewOperationError(model.MsgListNotCreated, err)
	}

	list, err := decodeCreateListInput(input)
	if err != nil {
		return model.ListRow{}, model.NewOperationError(model.MsgListNotCreated, err)
	}

	var saved model.ListRow
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkListReferences(ctx, list); err != nil {
			return err
		}

		list.UUID = uuid.New()

		info, err := s.infos.CreateCreationInformation(ctx, infoInput)
		if err != nil {
			return err
		}
		if list.CreationInformationUUID, err = validate.ParseUUID(info.UUID); err != nil {
			return err
		}

		row, err := list.Row()
		if err != nil {
			return err
		}
		if err := s.listStore.Create(ctx, row); err != nil {
			return err
		}

		saved, err = readBack(ctx, s.listStore.GetByUUID, model.KindList, row.UUID)
		return err
	})
	if err != nil {
		s.logger.Error("List service: failed to create list",
			"creator_user_uuid", infoInput.CreatorUserUUID,
			"error", err.Error())
		return model.ListRow{}, model.NewOperationError(model.MsgListNotCreated, err)
	}

	s.logger.Info("List service: list created", "uuid", saved.UUID)

	return saved, nil
}

func decodeCreateListInput(input model.CreateListInput) (model.List, error) {
	list := model.List{
		Title:       input.Title,
		Description: input.Description,
		ColorHex:    input.ColorHex,
	}

	var err error
	if list.TaskUUIDs, err = model.DecodeUUIDs(input.TaskUUIDs); err != nil {
		return model.List{}, validate.WithField(err, "taskUuids")
	}
	if list.SubListUUIDs, err = model.DecodeUUIDs(input.SubListUUIDs); err != nil {
		return model.List{}, validate.WithField(err, "subListUuids")
	}
	if list.SharedWithUserUUIDs, err = model.DecodeUUIDs(input.SharedWithUserUUIDs); err != nil {
		return model.List{}, validate.WithField(err, "sharedWithUserUuids")
	}
	if input.ParentListUUID != nil {
		parent, err := validate.ParseUUID(*input.ParentListUUID)
		if err != nil {
			return model.List{}, validate.WithField(err, "parentListUuid")
		}
		list.ParentListUUID = &parent
	}

	return list, nil
}

// checkListReferences fails on the first reference that does not resolve.
func (s *List) checkListReferences(ctx context.Context, list model.List) error {
	for _, id := range list.TaskUUIDs {
		if err := requireExists(ctx, s.tasks.TaskExists, model.KindTask, id.String()); err != nil {
			return err
		}
	}
	if list.ParentListUUID != nil {
		if err := requireExists(ctx, s.ListExists, model.KindList, list.ParentListUUID.String()); err != nil {
			return err
		}
	}
	for _, id := range list.SubListUUIDs {
		if err := requireExists(ctx, s.ListExists, model.KindList, id.String()); err != nil {
			return err
		}
	}
	for _, id := range list.SharedWithUserUUIDs {
		if err := requireExists(ctx, s.users.UserExists, model.KindUser, id.String()); err != nil {
			return err
		}
	}
	return nil
}

// GetListByUUID returns nil when no list has the given UUID.
func (s *List) GetListByUUID(ctx context.Context, uuid string) (*model.ListRow, error) {
	return getOptional(ctx, s.listStore.GetByUUID, uuid)
}

func (s *List) ListExists(ctx context.Context, uuid string) (bool, error) {
	found, err := s.listStore.Exists(ctx, uuid)
	if err != nil {
		return false, fmt.Errorf("failed to check list existence: %w", err)
	}
	return found, nil
}

// UpdateList replaces the title, description and color that input carries and keeps the rest.
// The edit is attributed to infoInput's user.
func (s *List) UpdateList(ctx context.Context, infoInput model.UpdateCreationInformationInput, input model.UpdateListInput) (model.ListRow, error) {
	if err := validate.Struct(infoInput); err != nil {
		return model.ListRow{}, model.NewOperationError(model.MsgListNotUpdated, err)
	}
	if err := validate.Struct(input); err != nil {
		return model.ListRow{}, model.NewOperationError(model.MsgListNotUpdated, err)
	}

	var saved model.ListRow
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		row, err := s.loadList(ctx, input.UUID)
		if err != nil {
			return err
		}

		title := row.Title
		if input.Title != nil {
			title = *input.Title
		}
		description := row.Description
		if input.Description != nil {
			description = input.Description
		}
		colorHex := row.ColorHex
		if input.ColorHex != nil {
			color, err := validate.ColorHex(*input.ColorHex)
			if err != nil {
				return validate.WithField(err, "colorHex")
			}
			colorHex = &color
		}

		if err := s.listStore.UpdateDetails(ctx, row.UUID, title, description, colorHex); err != nil {
			return err
		}

		if _, err := s.infos.UpdateCreationInformation(ctx, row.CreationInformationUUID, infoInput); err != nil {
			return err
		}

		saved, err = readBack(ctx, s.listStore.GetByUUID, model.KindList, row.UUID)
		return err
	})
	if err != nil {
		s.logger.Error("List service: failed to update list",
			"uuid", input.UUID,
			"error", err.Error())
		return model.ListRow{}, model.NewOperationError(model.MsgListNotUpdated, err)
	}

	s.logger.Info("List service: list updated", "uuid", saved.UUID)

	return saved, nil
}

// AddTask appends an existing task to a list and attributes the edit to input's user.
// The list becomes the task's parent. A previous parent list stops listing the task.
func (s *List) AddTask(ctx context.Context, input model.AddTaskInput) (model.ListRow, error) {
	if err := validate.Struct(input); err != nil {
		return model.ListRow{}, model.NewOperationError(model.MsgTaskNotAdded, err)
	}

	var saved model.ListRow
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		row, err := s.loadList(ctx, input.ParentListUUID)
		if err != nil {
			return err
		}

		previous, err := s.tasks.moveToList(ctx, input.TaskUUID, row.UUID)
		if err != nil {
			return err
		}
		if previous != nil && *previous != row.UUID {
			if err := s.detachTask(ctx, *previous, input.TaskUUID); err != nil {
				return err
			}
		}

		if err := s.appendTask(ctx, row, input.TaskUUID, input.LastUpdatedByUserUUID); err != nil {
			return err
		}

		saved, err = readBack(ctx, s.listStore.GetByUUID, model.KindList, row.UUID)
		return err
	})
	if err != nil {
		s.logger.Error("List service: failed to add task",
			"list_uuid", input.ParentListUUID,
			"task_uuid", input.TaskUUID,
			"error", err.Error())
		return model.ListRow{}, model.NewOperationError(model.MsgTaskNotAdded, err)
	}

	s.logger.Info("List service: task added",
		"list_uuid", saved.UUID,
		"task_uuid", input.TaskUUID)

	return saved, nil
}

// AddNewTask creates a task under input.ParentListUUID and appends it to that list.
// The list edit is attributed to the task's creator.
func (s *List) AddNewTask(ctx context.Context, infoInput model.CreateCreationInformationInput, input model.CreateTaskInput) (model.TaskRow, error) {
	if input.ParentListUUID == nil {
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotAdded,
			&model.ValidationError{Field: "parentListUuid", Reason: "required"})
	}
	if err := validate.Struct(infoInput); err != nil {
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotAdded, err)
	}
	if err := validate.Struct(input); err != nil {
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotAdded, err)
	}

	var task model.TaskRow
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		row, err := s.loadList(ctx, *input.ParentListUUID)
		if err != nil {
			return err
		}

		if task, err = s.tasks.CreateTask(ctx, infoInput, input); err != nil {
			return err
		}

		return s.appendTask(ctx, row, task.UUID, infoInput.CreatorUserUUID)
	})
	if err != nil {
		s.logger.Error("List service: failed to add new task",
			"list_uuid", *input.ParentListUUID,
			"error", err.Error())
		return model.TaskRow{}, model.NewOperationError(model.MsgTaskNotAdded, err)
	}

	s.logger.Info("List service: new task added",
		"list_uuid", *input.ParentListUUID,
		"task_uuid", task.UUID)

	return task, nil
}

func (s *List) loadList(ctx context.Context, listUUID string) (model.ListRow, error) {
	row, err := s.listStore.GetByUUID(ctx, listUUID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ListRow{}, fmt.Errorf("list '%s': %w", listUUID, model.ErrNotFound)
	}
	if err != nil {
		return model.ListRow{}, fmt.Errorf("failed to get list: %w", err)
	}
	return row, nil
}

// decodeStored decodes a list read from the store. Corrupt columns are an inconsistency, not caller input.
func decodeStored(row model.ListRow) (model.List, error) {
	list, err := model.ListFromRow(row)
	if err != nil {
		return model.List{}, &model.InconsistencyError{Kind: model.KindList, UUID: row.UUID, Reason: err.Error()}
	}
	return list, nil
}

// saveTaskUUIDs persists the task collection of list.
func (s *List) saveTaskUUIDs(ctx context.Context, list model.List) error {
	encoded, err := list.Row()
	if err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}
	return s.listStore.UpdateTaskUUIDs(ctx, encoded.UUID, encoded.TaskUUIDs)
}

// detachTask removes taskUUID from the tasks of the list it used to belong to.
// A former parent that no longer exists is ignored.
func (s *List) detachTask(ctx context.Context, listUUID string, taskUUID string) error {
	row, err := s.listStore.GetByUUID(ctx, listUUID)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get previous parent list: %w", err)
	}

	list, err := decodeStored(row)
	if err != nil {
		return err
	}
	if list.TaskUUIDs == nil {
		return nil
	}
	taskID, err := validate.ParseUUID(taskUUID)
	if err != nil {
		return err
	}

	kept := make([]uuid.UUID, 0, len(list.TaskUUIDs))
	for _, id := range list.TaskUUIDs {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(list.TaskUUIDs) {
		return nil
	}
	list.TaskUUIDs = kept

	return s.saveTaskUUIDs(ctx, list)
}

// appendTask adds taskUUID to the end of the list's tasks and refreshes the list's audit metadata.
func (s *List) appendTask(ctx context.Context, row model.ListRow, taskUUID string, editorUUID string) error {
	list, err := decodeStored(row)
	if err != nil {
		return err
	}
	taskID, err := validate.ParseUUID(taskUUID)
	if err != nil {
		return err
	}

	list.TaskUUIDs = append(list.TaskUUIDs, taskID)
	if err := s.saveTaskUUIDs(ctx, list); err != nil {
		return err
	}

	_, err = s.infos.UpdateCreationInformation(ctx, row.CreationInformationUUID,
		model.UpdateCreationInformationInput{LastUpdatedByUserUUID: editorUUID})
	return err
}
