package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

func (s *User) AllUsers(ctx context.Context) ([]model.UserRow, error) {
	users, err := s.userStore.All(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users", "error", err.Error())
		return nil, model.NewOperationError(model.MsgInternalError, fmt.Errorf("failed to list users: %w", err))
	}

	return users, nil
}

// CreateUser stores a new user with its password digested and returns the persisted row.
func (s *User) CreateUser(ctx context.Context, input model.CreateUserInput) (model.UserRow, error) {
	s.logger.Debug("User service: creating user", "username", input.Username)

	if err := validate.Struct(input); err != nil {
		return model.UserRow{}, model.NewOperationError(model.MsgUserNotCreated, err)
	}

	user := model.UserRow{
		UUID:         uuid.NewString(),
		Username:     input.Username,
		PasswordHash: s.hasher.Hash(input.Password),
		Nickname:     input.Nickname,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Error("User service: failed to create user",
			"username", input.Username,
			"error", err.Error())
		return model.UserRow{}, model.NewOperationError(model.MsgUserNotCreated, err)
	}

	saved, err := readBack(ctx, s.userStore.GetByUUID, model.KindUser, user.UUID)
	if err != nil {
		s.logger.Error("User service: failed to read back user",
			"uuid", user.UUID,
			"error", err.Error())
		return model.UserRow{}, model.NewOperationError(model.MsgUserNotCreated, err)
	}

	s.logger.Info("User service: user created", "uuid", saved.UUID)

	return saved, nil
}

// GetUserByUUID returns nil when no user has the given UUID.
func (s *User) GetUserByUUID(ctx context.Context, uuid string) (*model.UserRow, error) {
	return getOptional(ctx, s.userStore.GetByUUID, uuid)
}

func (s *User) UserExists(ctx context.Context, uuid string) (bool, error) {
	found, err := s.userStore.Exists(ctx, uuid)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return found, nil
}
