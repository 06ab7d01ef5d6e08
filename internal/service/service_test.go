package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/security"
	"github.com/umbreon222/Todo-List-Api/internal/testutil"
)

const testSalt = "pepper"

// stepClock advances one second on every reading.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fixture struct {
	store *testutil.MemoryStore
	clock *stepClock
	users *User
	infos *CreationInformation
	tags  *Tag
	tasks *Task
	lists *List
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testutil.NewMemoryStore()
	log := testutil.MakeNoopLogger()
	clock := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	users := NewUser(store.Users(), security.NewSaltedSHA3(testSalt), log)
	infos := NewCreationInformation(store.CreationInformation(), store, users, log)
	infos.now = clock.Now
	tags := NewTag(store.Tags(), store, infos, log)
	tasks := NewTask(store.Tasks(), store.Lists(), store, infos, tags, log)
	lists := NewList(store.Lists(), store, users, infos, tasks, log)

	return &fixture{
		store: store,
		clock: clock,
		users: users,
		infos: infos,
		tags:  tags,
		tasks: tasks,
		lists: lists,
	}
}

func (f *fixture) createUser(t *testing.T, username string) model.UserRow {
	t.Helper()
	user, err := f.users.CreateUser(context.Background(), model.CreateUserInput{
		Username: username,
		Password: username + "-password",
		Nickname: username,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createList(t *testing.T, creator model.UserRow, input model.CreateListInput) model.ListRow {
	t.Helper()
	list, err := f.lists.CreateList(context.Background(),
		model.CreateCreationInformationInput{CreatorUserUUID: creator.UUID}, input)
	require.NoError(t, err)
	return list
}

func (f *fixture) createTag(t *testing.T, creator model.UserRow, title string) model.TagRow {
	t.Helper()
	tag, err := f.tags.CreateTag(context.Background(),
		model.CreateCreationInformationInput{CreatorUserUUID: creator.UUID}, model.CreateTagInput{Title: title})
	require.NoError(t, err)
	return tag
}

func (f *fixture) createTask(t *testing.T, creator model.UserRow, input model.CreateTaskInput) model.TaskRow {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(),
		model.CreateCreationInformationInput{CreatorUserUUID: creator.UUID}, input)
	require.NoError(t, err)
	return task
}

// requireOperationError asserts err is an OperationError carrying msg and returns it.
func requireOperationError(t *testing.T, err error, msg string) *model.OperationError {
	t.Helper()
	var opErr *model.OperationError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, msg, opErr.Message)
	return opErr
}

// passThrough makes a mocked Transactor run the callback directly.
func passThrough(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
