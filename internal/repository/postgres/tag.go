package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var _ model.TagStore = (*TagRepository)(nil)

type TagRepository struct {
	db *Connection
}

func NewTagRepository(db *Connection) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) All(ctx context.Context) ([]model.TagRow, error) {
	query := `SELECT uuid, title, creation_information_uuid FROM tags ORDER BY inserted_at, uuid`

	rows, err := r.db.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]model.TagRow, 0)
	for rows.Next() {
		var tag model.TagRow
		if err := rows.Scan(&tag.UUID, &tag.Title, &tag.CreationInformationUUID); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return tags, nil
}

func (r *TagRepository) Create(ctx context.Context, tag model.TagRow) error {
	query := `INSERT INTO tags (uuid, title, creation_information_uuid) VALUES ($1, $2, $3)`

	if _, err := r.db.conn(ctx).Exec(ctx, query, tag.UUID, tag.Title, tag.CreationInformationUUID); err != nil {
		return describeWriteError("create tag", err)
	}

	return nil
}

func (r *TagRepository) GetByUUID(ctx context.Context, uuid string) (model.TagRow, error) {
	var tag model.TagRow
	query := `SELECT uuid, title, creation_information_uuid FROM tags WHERE uuid = $1`

	if err := r.db.conn(ctx).QueryRow(ctx, query, uuid).Scan(&tag.UUID, &tag.Title, &tag.CreationInformationUUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TagRow{}, model.ErrNotFound
		}
		return model.TagRow{}, fmt.Errorf("failed to get tag by uuid: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	return exists(ctx, r.db, "tags", uuid)
}
