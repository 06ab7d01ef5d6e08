package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umbreon222/Todo-List-Api/internal/mocks"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/testutil"
)

func TestList_CreateList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	parent := f.createList(t, alice, model.CreateListInput{Title: "Home"})
	task := f.createTask(t, alice, model.CreateTaskInput{Content: "Sweep"})

	t.Run("all references resolve", func(t *testing.T) {
		input := model.CreateListInput{
			Title:               "Groceries",
			Description:         strPtr("weekly shop"),
			ColorHex:            strPtr("#A0b"),
			TaskUUIDs:           strPtr(fmt.Sprintf(`["%s"]`, task.UUID)),
			ParentListUUID:      strPtr(parent.UUID),
			SubListUUIDs:        strPtr("[]"),
			SharedWithUserUUIDs: strPtr(fmt.Sprintf(`["%s","%s"]`, bob.UUID, alice.UUID)),
		}
		list, err := f.lists.CreateList(ctx, model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID}, input)
		require.NoError(t, err)

		assert.Equal(t, "Groceries", list.Title)
		assert.Equal(t, input.Description, list.Description)
		assert.Equal(t, input.ColorHex, list.ColorHex)
		assert.Equal(t, input.TaskUUIDs, list.TaskUUIDs)
		assert.Equal(t, input.ParentListUUID, list.ParentListUUID)
		assert.Equal(t, input.SubListUUIDs, list.SubListUUIDs)
		assert.Equal(t, input.SharedWithUserUUIDs, list.SharedWithUserUUIDs)

		info, err := f.infos.GetCreationInformationByUUID(ctx, list.CreationInformationUUID)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, alice.UUID, info.CreatorUserUUID)
		assert.NotEqual(t, parent.CreationInformationUUID, list.CreationInformationUUID)
	})

	t.Run("optional collections stay null", func(t *testing.T) {
		list := f.createList(t, alice, model.CreateListInput{Title: ""})
		assert.Nil(t, list.TaskUUIDs)
		assert.Nil(t, list.SubListUUIDs)
		assert.Nil(t, list.SharedWithUserUUIDs)
		assert.Nil(t, list.ParentListUUID)
	})

	missing := uuid.NewString()
	refTests := []struct {
		name     string
		input    model.CreateListInput
		wantKind model.EntityKind
	}{
		{
			name:     "unknown shared user",
			input:    model.CreateListInput{Title: "x", SharedWithUserUUIDs: strPtr(fmt.Sprintf(`["%s","%s"]`, bob.UUID, missing))},
			wantKind: model.KindUser,
		},
		{
			name:     "unknown task",
			input:    model.CreateListInput{Title: "x", TaskUUIDs: strPtr(fmt.Sprintf(`["%s"]`, missing))},
			wantKind: model.KindTask,
		},
		{
			name:     "unknown parent",
			input:    model.CreateListInput{Title: "x", ParentListUUID: strPtr(missing)},
			wantKind: model.KindList,
		},
		{
			name:     "unknown sub list",
			input:    model.CreateListInput{Title: "x", SubListUUIDs: strPtr(fmt.Sprintf(`["%s"]`, missing))},
			wantKind: model.KindList,
		},
	}
	for _, tt := range refTests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := f.infos.AllCreationInformation(ctx)
			require.NoError(t, err)

			_, err = f.lists.CreateList(ctx, model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID}, tt.input)
			requireOperationError(t, err, model.MsgListNotCreated)
			var refErr *model.ReferenceNotFoundError
			require.ErrorAs(t, err, &refErr)
			assert.Equal(t, tt.wantKind, refErr.Kind)
			assert.Equal(t, missing, refErr.UUID)

			after, err := f.infos.AllCreationInformation(ctx)
			require.NoError(t, err)
			assert.Len(t, after, len(before))
		})
	}

	validationTests := []struct {
		name      string
		info      model.CreateCreationInformationInput
		input     model.CreateListInput
		wantField string
	}{
		{
			name:      "bad color",
			info:      model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
			input:     model.CreateListInput{Title: "x", ColorHex: strPtr("red")},
			wantField: "colorHex",
		},
		{
			name:      "malformed shared users json",
			info:      model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
			input:     model.CreateListInput{Title: "x", SharedWithUserUUIDs: strPtr("[")},
			wantField: "sharedWithUserUuids",
		},
		{
			name:      "malformed creator",
			info:      model.CreateCreationInformationInput{CreatorUserUUID: "alice"},
			input:     model.CreateListInput{Title: "x"},
			wantField: "creatorUserUuid",
		},
	}
	for _, tt := range validationTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.lists.CreateList(ctx, tt.info, tt.input)
			requireOperationError(t, err, model.MsgListNotCreated)
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}

	t.Run("unknown creator leaves nothing behind", func(t *testing.T) {
		before, err := f.lists.AllLists(ctx)
		require.NoError(t, err)

		_, err = f.lists.CreateList(ctx, model.CreateCreationInformationInput{CreatorUserUUID: missing}, model.CreateListInput{Title: "x"})
		requireOperationError(t, err, model.MsgListNotCreated)

		after, err := f.lists.AllLists(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestList_UpdateList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	list := f.createList(t, alice, model.CreateListInput{
		Title:       "Groceries",
		Description: strPtr("weekly"),
		ColorHex:    strPtr("#fff"),
	})

	t.Run("absent fields are kept", func(t *testing.T) {
		updated, err := f.lists.UpdateList(ctx,
			model.UpdateCreationInformationInput{LastUpdatedByUserUUID: bob.UUID},
			model.UpdateListInput{UUID: list.UUID, Title: strPtr("Shopping")})
		require.NoError(t, err)

		assert.Equal(t, "Shopping", updated.Title)
		assert.Equal(t, strPtr("weekly"), updated.Description)
		assert.Equal(t, strPtr("#fff"), updated.ColorHex)

		info, err := f.infos.GetCreationInformationByUUID(ctx, list.CreationInformationUUID)
		require.NoError(t, err)
		assert.Equal(t, bob.UUID, info.LastUpdatedByUserUUID)
		assert.Equal(t, alice.UUID, info.CreatorUserUUID)
	})

	t.Run("present fields replace", func(t *testing.T) {
		updated, err := f.lists.UpdateList(ctx,
			model.UpdateCreationInformationInput{LastUpdatedByUserUUID: alice.UUID},
			model.UpdateListInput{UUID: list.UUID, Description: strPtr(""), ColorHex: strPtr("#000000")})
		require.NoError(t, err)

		assert.Equal(t, "Shopping", updated.Title)
		assert.Equal(t, strPtr(""), updated.Description)
		assert.Equal(t, strPtr("#000000"), updated.ColorHex)
	})

	t.Run("bad color rejected", func(t *testing.T) {
		_, err := f.lists.UpdateList(ctx,
			model.UpdateCreationInformationInput{LastUpdatedByUserUUID: alice.UUID},
			model.UpdateListInput{UUID: list.UUID, ColorHex: strPtr("#12345")})
		requireOperationError(t, err, model.MsgListNotUpdated)
		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("missing list", func(t *testing.T) {
		_, err := f.lists.UpdateList(ctx,
			model.UpdateCreationInformationInput{LastUpdatedByUserUUID: alice.UUID},
			model.UpdateListInput{UUID: uuid.NewString(), Title: strPtr("x")})
		requireOperationError(t, err, model.MsgListNotUpdated)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown editor rolls back details", func(t *testing.T) {
		_, err := f.lists.UpdateList(ctx,
			model.UpdateCreationInformationInput{LastUpdatedByUserUUID: uuid.NewString()},
			model.UpdateListInput{UUID: list.UUID, Title: strPtr("Never")})
		requireOperationError(t, err, model.MsgListNotUpdated)

		got, err := f.lists.GetListByUUID(ctx, list.UUID)
		require.NoError(t, err)
		assert.Equal(t, "Shopping", got.Title)
	})
}

func TestList_AddTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	list := f.createList(t, alice, model.CreateListInput{Title: "Groceries"})
	first := f.createTask(t, alice, model.CreateTaskInput{Content: "Eggs"})
	second := f.createTask(t, alice, model.CreateTaskInput{Content: "Bread"})

	for _, task := range []model.TaskRow{first, second} {
		_, err := f.lists.AddTask(ctx, model.AddTaskInput{
			LastUpdatedByUserUUID: bob.UUID,
			ParentListUUID:        list.UUID,
			TaskUUID:              task.UUID,
		})
		require.NoError(t, err)
	}

	got, err := f.lists.GetListByUUID(ctx, list.UUID)
	require.NoError(t, err)
	taskIDs, err := model.DecodeUUIDs(got.TaskUUIDs)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{uuid.MustParse(first.UUID), uuid.MustParse(second.UUID)}, taskIDs)

	info, err := f.infos.GetCreationInformationByUUID(ctx, list.CreationInformationUUID)
	require.NoError(t, err)
	assert.Equal(t, bob.UUID, info.LastUpdatedByUserUUID)

	t.Run("unknown task", func(t *testing.T) {
		missing := uuid.NewString()
		_, err := f.lists.AddTask(ctx, model.AddTaskInput{LastUpdatedByUserUUID: bob.UUID, ParentListUUID: list.UUID, TaskUUID: missing})
		requireOperationError(t, err, model.MsgTaskNotAdded)
		var refErr *model.ReferenceNotFoundError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, model.KindTask, refErr.Kind)
	})

	t.Run("missing list", func(t *testing.T) {
		_, err := f.lists.AddTask(ctx, model.AddTaskInput{LastUpdatedByUserUUID: bob.UUID, ParentListUUID: uuid.NewString(), TaskUUID: first.UUID})
		requireOperationError(t, err, model.MsgTaskNotAdded)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown editor leaves task list untouched", func(t *testing.T) {
		_, err := f.lists.AddTask(ctx, model.AddTaskInput{LastUpdatedByUserUUID: uuid.NewString(), ParentListUUID: list.UUID, TaskUUID: first.UUID})
		requireOperationError(t, err, model.MsgTaskNotAdded)

		after, err := f.lists.GetListByUUID(ctx, list.UUID)
		require.NoError(t, err)
		assert.Equal(t, got.TaskUUIDs, after.TaskUUIDs)
	})
}

func TestList_AddNewTask_EndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.createUser(t, "alice")
	groceries := f.createList(t, alice, model.CreateListInput{Title: "Groceries"})

	task, err := f.lists.AddNewTask(ctx,
		model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
		model.CreateTaskInput{Content: "Buy milk", ParentListUUID: strPtr(groceries.UUID)})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Content)
	assert.False(t, task.IsComplete)
	assert.Equal(t, model.PriorityLow, task.Priority)
	assert.Equal(t, strPtr(groceries.UUID), task.ParentListUUID)

	list, err := f.lists.GetListByUUID(ctx, groceries.UUID)
	require.NoError(t, err)
	require.NotNil(t, list)
	taskIDs, err := model.DecodeUUIDs(list.TaskUUIDs)
	require.NoError(t, err)
	assert.Contains(t, taskIDs, uuid.MustParse(task.UUID))

	info, err := f.infos.GetCreationInformationByUUID(ctx, list.CreationInformationUUID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, alice.UUID, info.LastUpdatedByUserUUID)
	assert.True(t, info.LastUpdatedTime.After(info.CreationTime))

	byList, err := f.tasks.TasksByList(ctx, groceries.UUID)
	require.NoError(t, err)
	assert.Equal(t, []model.TaskRow{task}, byList)
}

func TestList_AddNewTask_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	list := f.createList(t, alice, model.CreateListInput{Title: "Groceries"})

	t.Run("parent list required", func(t *testing.T) {
		_, err := f.lists.AddNewTask(ctx,
			model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
			model.CreateTaskInput{Content: "Buy milk"})
		requireOperationError(t, err, model.MsgTaskNotAdded)
		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "parentListUuid", validationErr.Field)
	})

	t.Run("missing list", func(t *testing.T) {
		_, err := f.lists.AddNewTask(ctx,
			model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
			model.CreateTaskInput{Content: "Buy milk", ParentListUUID: strPtr(uuid.NewString())})
		requireOperationError(t, err, model.MsgTaskNotAdded)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown creator creates nothing", func(t *testing.T) {
		_, err := f.lists.AddNewTask(ctx,
			model.CreateCreationInformationInput{CreatorUserUUID: uuid.NewString()},
			model.CreateTaskInput{Content: "Buy milk", ParentListUUID: strPtr(list.UUID)})
		opErr := requireOperationError(t, err, model.MsgTaskNotAdded)
		var inner *model.OperationError
		require.ErrorAs(t, opErr.Err, &inner)
		assert.Equal(t, model.MsgTaskNotCreated, inner.Message)

		tasks, err := f.tasks.AllTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		got, err := f.lists.GetListByUUID(ctx, list.UUID)
		require.NoError(t, err)
		assert.Nil(t, got.TaskUUIDs)
	})
}

func TestList_GetListByUUID_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	list := f.createList(t, alice, model.CreateListInput{
		Title:               "Groceries",
		SharedWithUserUUIDs: strPtr(fmt.Sprintf(`["%s"]`, alice.UUID)),
	})

	first, err := f.lists.GetListByUUID(ctx, list.UUID)
	require.NoError(t, err)
	second, err := f.lists.GetListByUUID(ctx, list.UUID)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("GetListByUUID() not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(&list, first); diff != "" {
		t.Errorf("GetListByUUID() differs from created row (-created +got):\n%s", diff)
	}
}

func TestList_CreateList_ReadBackMiss(t *testing.T) {
	ctx := context.Background()
	creator := "11111111-1111-4111-8111-111111111111"

	listStore := mocks.NewListStore(t)
	infoStore := mocks.NewCreationInformationStore(t)
	userStore := mocks.NewUserStore(t)
	tx := mocks.NewTransactor(t)
	log := testutil.MakeNoopLogger()

	tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(passThrough)
	userStore.On("Exists", mock.Anything, creator).Return(true, nil)
	infoStore.On("Create", mock.Anything, mock.Anything).Return(nil)
	infoStore.On("GetByUUID", mock.Anything, mock.Anything).Return(
		func(_ context.Context, id string) (model.CreationInformationRow, error) {
			return model.CreationInformationRow{UUID: id, CreatorUserUUID: creator, LastUpdatedByUserUUID: creator}, nil
		})
	listStore.On("Create", mock.Anything, mock.Anything).Return(nil)
	listStore.On("GetByUUID", mock.Anything, mock.Anything).Return(model.ListRow{}, model.ErrNotFound)

	users := NewUser(userStore, mocks.NewPasswordHasher(t), log)
	infos := NewCreationInformation(infoStore, tx, users, log)
	s := NewList(listStore, tx, users, infos, nil, log)

	_, err := s.CreateList(ctx, model.CreateCreationInformationInput{CreatorUserUUID: creator}, model.CreateListInput{Title: "Groceries"})
	requireOperationError(t, err, model.MsgListNotCreated)
	var inconsistency *model.InconsistencyError
	require.ErrorAs(t, err, &inconsistency)
	assert.Equal(t, model.KindList, inconsistency.Kind)
	assert.False(t, errors.Is(err, model.ErrNotFound))
}

func TestList_AllLists_StoreFailure(t *testing.T) {
	storeErr := errors.New("boom")
	listStore := mocks.NewListStore(t)
	listStore.On("All", mock.Anything).Return(nil, storeErr)

	s := NewList(listStore, mocks.NewTransactor(t), nil, nil, nil, testutil.MakeNoopLogger())

	_, err := s.AllLists(context.Background())
	requireOperationError(t, err, model.MsgInternalError)
	assert.ErrorIs(t, err, storeErr)
}

func TestList_AddTask_MovesTaskBetweenLists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	list := f.createList(t, alice, model.CreateListInput{Title: "Groceries"})
	other := f.createList(t, alice, model.CreateListInput{Title: "Hardware"})

	task, err := f.lists.AddNewTask(ctx,
		model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
		model.CreateTaskInput{Content: "Nails", ParentListUUID: strPtr(other.UUID)})
	require.NoError(t, err)
	unlisted := f.createTask(t, alice, model.CreateTaskInput{Content: "Glue", ParentListUUID: strPtr(other.UUID)})

	for _, id := range []string{task.UUID, unlisted.UUID} {
		_, err := f.lists.AddTask(ctx, model.AddTaskInput{
			LastUpdatedByUserUUID: alice.UUID,
			ParentListUUID:        list.UUID,
			TaskUUID:              id,
		})
		require.NoError(t, err)
	}

	byList, err := f.tasks.TasksByList(ctx, list.UUID)
	require.NoError(t, err)
	require.Len(t, byList, 2)
	for _, moved := range byList {
		assert.Equal(t, strPtr(list.UUID), moved.ParentListUUID)
	}

	byOther, err := f.tasks.TasksByList(ctx, other.UUID)
	require.NoError(t, err)
	assert.Empty(t, byOther)

	got, err := f.lists.GetListByUUID(ctx, list.UUID)
	require.NoError(t, err)
	taskIDs, err := model.DecodeUUIDs(got.TaskUUIDs)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{uuid.MustParse(task.UUID), uuid.MustParse(unlisted.UUID)}, taskIDs)

	former, err := f.lists.GetListByUUID(ctx, other.UUID)
	require.NoError(t, err)
	formerIDs, err := model.DecodeUUIDs(former.TaskUUIDs)
	require.NoError(t, err)
	assert.Empty(t, formerIDs)
}

func TestList_AddTask_RollsBackMove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice")
	list := f.createList(t, alice, model.CreateListInput{Title: "Groceries"})
	other := f.createList(t, alice, model.CreateListInput{Title: "Hardware"})
	task, err := f.lists.AddNewTask(ctx,
		model.CreateCreationInformationInput{CreatorUserUUID: alice.UUID},
		model.CreateTaskInput{Content: "Nails", ParentListUUID: strPtr(other.UUID)})
	require.NoError(t, err)

	_, err = f.lists.AddTask(ctx, model.AddTaskInput{
		LastUpdatedByUserUUID: uuid.NewString(),
		ParentListUUID:        list.UUID,
		TaskUUID:              task.UUID,
	})
	requireOperationError(t, err, model.MsgTaskNotAdded)

	byOther, err := f.tasks.TasksByList(ctx, other.UUID)
	require.NoError(t, err)
	assert.Equal(t, []model.TaskRow{task}, byOther)

	former, err := f.lists.GetListByUUID(ctx, other.UUID)
	require.NoError(t, err)
	formerIDs, err := model.DecodeUUIDs(former.TaskUUIDs)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{uuid.MustParse(task.UUID)}, formerIDs)
}

func TestList_AddTask_CorruptStoredTasks(t *testing.T) {
	tests := []struct {
		name   string
		target bool
	}{
		{name: "target list", target: true},
		{name: "previous parent list", target: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			alice := f.createUser(t, "alice")
			list := f.createList(t, alice, model.CreateListInput{Title: "Groceries"})
			other := f.createList(t, alice, model.CreateListInput{Title: "Hardware"})
			task := f.createTask(t, alice, model.CreateTaskInput{Content: "Nails", ParentListUUID: strPtr(other.UUID)})

			corrupt := other.UUID
			if tt.target {
				corrupt = list.UUID
			}
			require.NoError(t, f.store.Lists().UpdateTaskUUIDs(ctx, corrupt, strPtr(`["x"]garbage`)))

			_, err := f.lists.AddTask(ctx, model.AddTaskInput{
				LastUpdatedByUserUUID: alice.UUID,
				ParentListUUID:        list.UUID,
				TaskUUID:              task.UUID,
			})
			requireOperationError(t, err, model.MsgTaskNotAdded)

			var inconsistency *model.InconsistencyError
			require.ErrorAs(t, err, &inconsistency)
			assert.Equal(t, model.KindList, inconsistency.Kind)
			assert.Equal(t, corrupt, inconsistency.UUID)
			assert.Contains(t, inconsistency.Reason, "taskUuids")

			var validationErr *model.ValidationError
			assert.False(t, errors.As(err, &validationErr))

			unchanged, err := f.tasks.GetTaskByUUID(ctx, task.UUID)
			require.NoError(t, err)
			require.NotNil(t, unchanged)
			assert.Equal(t, strPtr(other.UUID), unchanged.ParentListUUID)
		})
	}
}
