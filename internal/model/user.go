package model

import (
	"context"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	All(ctx context.Context) ([]UserRow, error)
	Create(ctx context.Context, user UserRow) error
	GetByUUID(ctx context.Context, uuid string) (UserRow, error)
	Exists(ctx context.Context, uuid string) (bool, error)
}

// PasswordHasher computes the stored digest of a plaintext password.
type PasswordHasher interface {
	Hash(password string) string
}

// UserRow is a persisted user. Users are immutable once created.
type UserRow struct {
	UUID         string
	Username     string
	PasswordHash string
	Nickname     string
}

// CreateUserInput contains parameters to create a user.
type CreateUserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname"`
}
