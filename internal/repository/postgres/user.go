package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/umbreon222/Todo-List-Api/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) All(ctx context.Context) ([]model.UserRow, error) {
	query := `SELECT uuid, username, password_hash, nickname
			  FROM users ORDER BY inserted_at, uuid`

	rows, err := r.db.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.UserRow, 0)
	for rows.Next() {
		var user model.UserRow
		if err := rows.Scan(&user.UUID, &user.Username, &user.PasswordHash, &user.Nickname); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.UserRow) error {
	query := `INSERT INTO users (uuid, username, password_hash, nickname)
			  VALUES ($1, $2, $3, $4)`

	if _, err := r.db.conn(ctx).Exec(ctx, query, user.UUID, user.Username, user.PasswordHash, user.Nickname); err != nil {
		return describeWriteError("create user", err)
	}

	return nil
}

func (r *UserRepository) GetByUUID(ctx context.Context, uuid string) (model.UserRow, error) {
	var user model.UserRow
	query := `SELECT uuid, username, password_hash, nickname
			  FROM users WHERE uuid = $1`

	err := r.db.conn(ctx).QueryRow(ctx, query, uuid).Scan(
		&user.UUID, &user.Username, &user.PasswordHash, &user.Nickname,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserRow{}, model.ErrNotFound
		}
		return model.UserRow{}, fmt.Errorf("failed to get user by uuid: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	return exists(ctx, r.db, "users", uuid)
}

// exists runs the existence predicate against table. table is never user input.
func exists(ctx context.Context, db *Connection, table, uuid string) (bool, error) {
	var found bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE uuid = $1)`, table)

	if err := db.conn(ctx).QueryRow(ctx, query, uuid).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}

	return found, nil
}
