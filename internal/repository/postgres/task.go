package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelect = `SELECT t.uuid, t.content, t.priority,
		ARRAY(SELECT tt.tag_uuid FROM task_tags tt WHERE tt.task_uuid = t.uuid ORDER BY tt.position),
		t.is_complete, t.parent_list_uuid, t.creation_information_uuid
	FROM tasks t`

func scanTask(row pgx.Row) (model.TaskRow, error) {
	var (
		task     model.TaskRow
		priority int
	)
	if err := row.Scan(
		&task.UUID, &task.Content, &priority, &task.TagUUIDs,
		&task.IsComplete, &task.ParentListUUID, &task.CreationInformationUUID,
	); err != nil {
		return model.TaskRow{}, err
	}
	task.Priority = model.Priority(priority)
	if task.TagUUIDs == nil {
		task.TagUUIDs = []string{}
	}
	return task, nil
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]model.TaskRow, error) {
	rows, err := r.db.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.TaskRow, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) All(ctx context.Context) ([]model.TaskRow, error) {
	return r.queryTasks(ctx, taskSelect+` ORDER BY t.inserted_at, t.uuid`)
}

func (r *TaskRepository) GetByParentList(ctx context.Context, listUUID string) ([]model.TaskRow, error) {
	return r.queryTasks(ctx, taskSelect+` WHERE t.parent_list_uuid = $1 ORDER BY t.inserted_at, t.uuid`, listUUID)
}

// Create writes the task and its tag links. Callers that need both to land together run it in a transaction.
func (r *TaskRepository) Create(ctx context.Context, task model.TaskRow) error {
	db := r.db.conn(ctx)

	query := `INSERT INTO tasks (uuid, content, priority, is_complete, parent_list_uuid, creation_information_uuid)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := db.Exec(ctx, query,
		task.UUID, task.Content, int(task.Priority), task.IsComplete,
		task.ParentListUUID, task.CreationInformationUUID,
	); err != nil {
		return describeWriteError("create task", err)
	}

	if len(task.TagUUIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for position, tagUUID := range task.TagUUIDs {
		batch.Queue(`INSERT INTO task_tags (task_uuid, tag_uuid, position) VALUES ($1, $2, $3)`,
			task.UUID, tagUUID, position)
	}
	if err := sendBatch(ctx, db, batch); err != nil {
		return describeWriteError("link task tags", err)
	}

	return nil
}

func (r *TaskRepository) GetByUUID(ctx context.Context, uuid string) (model.TaskRow, error) {
	task, err := scanTask(r.db.conn(ctx).QueryRow(ctx, taskSelect+` WHERE t.uuid = $1`, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TaskRow{}, model.ErrNotFound
		}
		return model.TaskRow{}, fmt.Errorf("failed to get task by uuid: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	return exists(ctx, r.db, "tasks", uuid)
}

func (r *TaskRepository) UpdateParentList(ctx context.Context, uuid string, listUUID string) error {
	query := `UPDATE tasks SET parent_list_uuid = $2 WHERE uuid = $1`

	tag, err := r.db.conn(ctx).Exec(ctx, query, uuid, listUUID)
	if err != nil {
		return describeWriteError("update task parent list", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func sendBatch(ctx context.Context, db querier, batch *pgx.Batch) error {
	sender, ok := db.(batchSender)
	if !ok {
		return fmt.Errorf("connection does not support batches")
	}

	results := sender.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}

	return results.Close()
}
