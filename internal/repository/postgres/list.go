package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var _ model.ListStore = (*ListRepository)(nil)

type ListRepository struct {
	db *Connection
}

func NewListRepository(db *Connection) *ListRepository {
	return &ListRepository{db: db}
}

const listColumns = `uuid, title, description, color_hex, task_uuids, parent_list_uuid,
	sub_list_uuids, shared_with_user_uuids, creation_information_uuid`

func scanList(row pgx.Row) (model.ListRow, error) {
	var list model.ListRow
	err := row.Scan(
		&list.UUID, &list.Title, &list.Description, &list.ColorHex, &list.TaskUUIDs,
		&list.ParentListUUID, &list.SubListUUIDs, &list.SharedWithUserUUIDs, &list.CreationInformationUUID,
	)
	return list, err
}

func (r *ListRepository) All(ctx context.Context) ([]model.ListRow, error) {
	query := `SELECT ` + listColumns + ` FROM lists ORDER BY inserted_at, uuid`

	rows, err := r.db.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	lists := make([]model.ListRow, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	return lists, nil
}

func (r *ListRepository) Create(ctx context.Context, list model.ListRow) error {
	query := `INSERT INTO lists (` + listColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := r.db.conn(ctx).Exec(ctx, query,
		list.UUID, list.Title, list.Description, list.ColorHex, list.TaskUUIDs,
		list.ParentListUUID, list.SubListUUIDs, list.SharedWithUserUUIDs, list.CreationInformationUUID,
	); err != nil {
		return describeWriteError("create list", err)
	}

	return nil
}

func (r *ListRepository) GetByUUID(ctx context.Context, uuid string) (model.ListRow, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE uuid = $1`

	list, err := scanList(r.db.conn(ctx).QueryRow(ctx, query, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ListRow{}, model.ErrNotFound
		}
		return model.ListRow{}, fmt.Errorf("failed to get list by uuid: %w", err)
	}

	return list, nil
}

func (r *ListRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	return exists(ctx, r.db, "lists", uuid)
}

func (r *ListRepository) UpdateDetails(ctx context.Context, uuid string, title string, description, colorHex *string) error {
	query := `UPDATE lists SET title = $2, description = $3, color_hex = $4 WHERE uuid = $1`

	tag, err := r.db.conn(ctx).Exec(ctx, query, uuid, title, description, colorHex)
	if err != nil {
		return describeWriteError("update list", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ListRepository) UpdateTaskUUIDs(ctx context.Context, uuid string, taskUUIDs *string) error {
	query := `UPDATE lists SET task_uuids = $2 WHERE uuid = $1`

	tag, err := r.db.conn(ctx).Exec(ctx, query, uuid, taskUUIDs)
	if err != nil {
		return describeWriteError("update list tasks", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
