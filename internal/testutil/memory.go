package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var (
	_ model.Transactor               = (*MemoryStore)(nil)
	_ model.UserStore                = (*MemoryUsers)(nil)
	_ model.CreationInformationStore = (*MemoryCreationInformation)(nil)
	_ model.ListStore                = (*MemoryLists)(nil)
	_ model.TaskStore                = (*MemoryTasks)(nil)
	_ model.TagStore                 = (*MemoryTags)(nil)
)

// table keeps rows keyed by UUID in insertion order.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(uuid string, row T) {
	if _, ok := t.rows[uuid]; !ok {
		t.order = append(t.order, uuid)
	}
	t.rows[uuid] = row
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[string]T, len(t.rows)), order: slices.Clone(t.order)}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

type txMarker struct{}

// MemoryStore is an in-process stand-in for the postgres repositories.
// Transactions snapshot every table and restore the snapshot when fn fails.
type MemoryStore struct {
	mu    sync.Mutex
	users *table[model.UserRow]
	infos *table[model.CreationInformationRow]
	lists *table[model.ListRow]
	tasks *table[model.TaskRow]
	tags  *table[model.TagRow]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: newTable[model.UserRow](),
		infos: newTable[model.CreationInformationRow](),
		lists: newTable[model.ListRow](),
		tasks: newTable[model.TaskRow](),
		tags:  newTable[model.TagRow](),
	}
}

func (m *MemoryStore) Users() *MemoryUsers { return &MemoryUsers{m} }

func (m *MemoryStore) CreationInformation() *MemoryCreationInformation {
	return &MemoryCreationInformation{m}
}

func (m *MemoryStore) Lists() *MemoryLists { return &MemoryLists{m} }

func (m *MemoryStore) Tasks() *MemoryTasks { return &MemoryTasks{m} }

func (m *MemoryStore) Tags() *MemoryTags { return &MemoryTags{m} }

func (m *MemoryStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	users, infos, lists, tasks, tags := m.users.clone(), m.infos.clone(), m.lists.clone(), m.tasks.clone(), m.tags.clone()
	m.mu.Unlock()

	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		m.mu.Lock()
		m.users, m.infos, m.lists, m.tasks, m.tags = users, infos, lists, tasks, tags
		m.mu.Unlock()
		return err
	}
	return nil
}

func get[T any](m *MemoryStore, t *table[T], uuid string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := t.rows[uuid]
	if !ok {
		var zero T
		return zero, model.ErrNotFound
	}
	return row, nil
}

func has[T any](m *MemoryStore, t *table[T], uuid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := t.rows[uuid]
	return ok
}

type MemoryUsers struct{ m *MemoryStore }

func (s *MemoryUsers) All(_ context.Context) ([]model.UserRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.users.all(), nil
}

func (s *MemoryUsers) Create(_ context.Context, user model.UserRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.users.insert(user.UUID, user)
	return nil
}

func (s *MemoryUsers) GetByUUID(_ context.Context, uuid string) (model.UserRow, error) {
	return get(s.m, s.m.users, uuid)
}

func (s *MemoryUsers) Exists(_ context.Context, uuid string) (bool, error) {
	return has(s.m, s.m.users, uuid), nil
}

type MemoryCreationInformation struct{ m *MemoryStore }

func (s *MemoryCreationInformation) All(_ context.Context) ([]model.CreationInformationRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.infos.all(), nil
}

func (s *MemoryCreationInformation) Create(_ context.Context, info model.CreationInformationRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.infos.insert(info.UUID, info)
	return nil
}

func (s *MemoryCreationInformation) GetByUUID(_ context.Context, uuid string) (model.CreationInformationRow, error) {
	return get(s.m, s.m.infos, uuid)
}

func (s *MemoryCreationInformation) Exists(_ context.Context, uuid string) (bool, error) {
	return has(s.m, s.m.infos, uuid), nil
}

func (s *MemoryCreationInformation) UpdateLastUpdated(_ context.Context, uuid string, editorUUID string, at time.Time) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	info, ok := s.m.infos.rows[uuid]
	if !ok {
		return model.ErrNotFound
	}
	info.LastUpdatedByUserUUID = editorUUID
	info.LastUpdatedTime = at
	s.m.infos.rows[uuid] = info
	return nil
}

type MemoryLists struct{ m *MemoryStore }

func (s *MemoryLists) All(_ context.Context) ([]model.ListRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.lists.all(), nil
}

func (s *MemoryLists) Create(_ context.Context, list model.ListRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.lists.insert(list.UUID, list)
	return nil
}

func (s *MemoryLists) GetByUUID(_ context.Context, uuid string) (model.ListRow, error) {
	return get(s.m, s.m.lists, uuid)
}

func (s *MemoryLists) Exists(_ context.Context, uuid string) (bool, error) {
	return has(s.m, s.m.lists, uuid), nil
}

func (s *MemoryLists) UpdateDetails(_ context.Context, uuid string, title string, description, colorHex *string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	list, ok := s.m.lists.rows[uuid]
	if !ok {
		return model.ErrNotFound
	}
	list.Title = title
	list.Description = description
	list.ColorHex = colorHex
	s.m.lists.rows[uuid] = list
	return nil
}

func (s *MemoryLists) UpdateTaskUUIDs(_ context.Context, uuid string, taskUUIDs *string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	list, ok := s.m.lists.rows[uuid]
	if !ok {
		return model.ErrNotFound
	}
	list.TaskUUIDs = taskUUIDs
	s.m.lists.rows[uuid] = list
	return nil
}

type MemoryTasks struct{ m *MemoryStore }

func (s *MemoryTasks) All(_ context.Context) ([]model.TaskRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.tasks.all(), nil
}

func (s *MemoryTasks) Create(_ context.Context, task model.TaskRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	task.TagUUIDs = slices.Clone(task.TagUUIDs)
	if task.TagUUIDs == nil {
		task.TagUUIDs = []string{}
	}
	s.m.tasks.insert(task.UUID, task)
	return nil
}

func (s *MemoryTasks) GetByUUID(_ context.Context, uuid string) (model.TaskRow, error) {
	return get(s.m, s.m.tasks, uuid)
}

func (s *MemoryTasks) GetByParentList(_ context.Context, listUUID string) ([]model.TaskRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]model.TaskRow, 0)
	for _, task := range s.m.tasks.all() {
		if task.ParentListUUID != nil && *task.ParentListUUID == listUUID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *MemoryTasks) Exists(_ context.Context, uuid string) (bool, error) {
	return has(s.m, s.m.tasks, uuid), nil
}

func (s *MemoryTasks) UpdateParentList(_ context.Context, uuid string, listUUID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	task, ok := s.m.tasks.rows[uuid]
	if !ok {
		return model.ErrNotFound
	}
	task.ParentListUUID = &listUUID
	s.m.tasks.rows[uuid] = task
	return nil
}

type MemoryTags struct{ m *MemoryStore }

func (s *MemoryTags) All(_ context.Context) ([]model.TagRow, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.tags.all(), nil
}

func (s *MemoryTags) Create(_ context.Context, tag model.TagRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.tags.insert(tag.UUID, tag)
	return nil
}

func (s *MemoryTags) GetByUUID(_ context.Context, uuid string) (model.TagRow, error) {
	return get(s.m, s.m.tags, uuid)
}

func (s *MemoryTags) Exists(_ context.Context, uuid string) (bool, error) {
	return has(s.m, s.m.tags, uuid), nil
}
