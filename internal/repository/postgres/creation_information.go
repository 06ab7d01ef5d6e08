package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var _ model.CreationInformationStore = (*CreationInformationRepository)(nil)

type CreationInformationRepository struct {
	db *Connection
}

func NewCreationInformationRepository(db *Connection) *CreationInformationRepository {
	return &CreationInformationRepository{db: db}
}

const creationInformationColumns = `uuid, creator_user_uuid, creation_time, last_updated_by_user_uuid, last_updated_time`

func scanCreationInformation(row pgx.Row) (model.CreationInformationRow, error) {
	var info model.CreationInformationRow
	if err := row.Scan(
		&info.UUID, &info.CreatorUserUUID, &info.CreationTime,
		&info.LastUpdatedByUserUUID, &info.LastUpdatedTime,
	); err != nil {
		return model.CreationInformationRow{}, err
	}
	info.CreationTime = info.CreationTime.UTC()
	info.LastUpdatedTime = info.LastUpdatedTime.UTC()
	return info, nil
}

func (r *CreationInformationRepository) All(ctx context.Context) ([]model.CreationInformationRow, error) {
	query := `SELECT ` + creationInformationColumns + `
			  FROM creation_information ORDER BY inserted_at, uuid`

	rows, err := r.db.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query creation information: %w", err)
	}
	defer rows.Close()

	infos := make([]model.CreationInformationRow, 0)
	for rows.Next() {
		info, err := scanCreationInformation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creation information: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate creation information: %w", err)
	}

	return infos, nil
}

func (r *CreationInformationRepository) Create(ctx context.Context, info model.CreationInformationRow) error {
	query := `INSERT INTO creation_information (` + creationInformationColumns + `)
			  VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.conn(ctx).Exec(ctx, query,
		info.UUID, info.CreatorUserUUID, info.CreationTime,
		info.LastUpdatedByUserUUID, info.LastUpdatedTime,
	); err != nil {
		return describeWriteError("create creation information", err)
	}

	return nil
}

func (r *CreationInformationRepository) GetByUUID(ctx context.Context, uuid string) (model.CreationInformationRow, error) {
	query := `SELECT ` + creationInformationColumns + `
			  FROM creation_information WHERE uuid = $1`

	info, err := scanCreationInformation(r.db.conn(ctx).QueryRow(ctx, query, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CreationInformationRow{}, model.ErrNotFound
		}
		return model.CreationInformationRow{}, fmt.Errorf("failed to get creation information by uuid: %w", err)
	}

	return info, nil
}

func (r *CreationInformationRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	return exists(ctx, r.db, "creation_information", uuid)
}

func (r *CreationInformationRepository) UpdateLastUpdated(ctx context.Context, uuid string, editorUUID string, at time.Time) error {
	query := `UPDATE creation_information
			  SET last_updated_by_user_uuid = $2, last_updated_time = $3
			  WHERE uuid = $1`

	tag, err := r.db.conn(ctx).Exec(ctx, query, uuid, editorUUID, at)
	if err != nil {
		return describeWriteError("update creation information", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
