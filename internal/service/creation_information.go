package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

type CreationInformation struct {
	infoStore model.CreationInformationStore
	tx        model.Transactor
	users     *User
	logger    *logger.Logger
	now       func() time.Time
}

func NewCreationInformation(
	infoStore model.CreationInformationStore,
	tx model.Transactor,
	users *User,
	logger *logger.Logger,
) *CreationInformation {
	return &CreationInformation{
		infoStore: infoStore,
		tx:        tx,
		users:     users,
		logger:    logger,
		now:       clock,
	}
}

func (s *CreationInformation) AllCreationInformation(ctx context.Context) ([]model.CreationInformationRow, error) {
	infos, err := s.infoStore.All(ctx)
	if err != nil {
		s.logger.Error("Creation information service: failed to list creation information", "error", err.Error())
		return nil, model.NewOperationError(model.MsgInternalError, fmt.Errorf("failed to list creation information: %w", err))
	}

	return infos, nil
}

// CreateCreationInformation records a new creator. Editor and edit time start out equal to creator and creation time.
func (s *CreationInformation) CreateCreationInformation(ctx context.Context, input model.CreateCreationInformationInput) (model.CreationInformationRow, error) {
	if err := validate.Struct(input); err != nil {
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotCreated, err)
	}

	if err := requireExists(ctx, s.users.UserExists, model.KindUser, input.CreatorUserUUID); err != nil {
		s.logger.Info("Creation information service: creator rejected",
			"creator_user_uuid", input.CreatorUserUUID,
			"error", err.Error())
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotCreated, err)
	}

	info := model.NewCreationInformationRow(uuid.NewString(), input.CreatorUserUUID, s.now())

	if err := s.infoStore.Create(ctx, info); err != nil {
		s.logger.Error("Creation information service: failed to create creation information",
			"creator_user_uuid", input.CreatorUserUUID,
			"error", err.Error())
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotCreated, err)
	}

	saved, err := readBack(ctx, s.infoStore.GetByUUID, model.KindCreationInformation, info.UUID)
	if err != nil {
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotCreated, err)
	}

	return saved, nil
}

// GetCreationInformationByUUID returns nil when no row has the given UUID.
func (s *CreationInformation) GetCreationInformationByUUID(ctx context.Context, uuid string) (*model.CreationInformationRow, error) {
	return getOptional(ctx, s.infoStore.GetByUUID, uuid)
}

func (s *CreationInformation) CreationInformationExists(ctx context.Context, uuid string) (bool, error) {
	found, err := s.infoStore.Exists(ctx, uuid)
	if err != nil {
		return false, fmt.Errorf("failed to check creation information existence: %w", err)
	}
	return found, nil
}

// UpdateCreationInformation attributes an edit to input's user. Only the editor and edit time are written.
func (s *CreationInformation) UpdateCreationInformation(ctx context.Context, infoUUID string, input model.UpdateCreationInformationInput) (model.CreationInformationRow, error) {
	if err := validate.UUID(infoUUID); err != nil {
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotUpdated, validate.WithField(err, "uuid"))
	}
	if err := validate.Struct(input); err != nil {
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotUpdated, err)
	}

	var updated model.CreationInformationRow
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		info, err := s.infoStore.GetByUUID(ctx, infoUUID)
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("creation information '%s': %w", infoUUID, model.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get creation information: %w", err)
		}

		if err := requireExists(ctx, s.users.UserExists, model.KindUser, input.LastUpdatedByUserUUID); err != nil {
			return err
		}

		info.SetLastUpdated(input.LastUpdatedByUserUUID, s.now())

		if err := s.infoStore.UpdateLastUpdated(ctx, info.UUID, info.LastUpdatedByUserUUID, info.LastUpdatedTime); err != nil {
			return fmt.Errorf("failed to update creation information: %w", err)
		}

		updated, err = readBack(ctx, s.infoStore.GetByUUID, model.KindCreationInformation, info.UUID)
		return err
	})
	if err != nil {
		s.logger.Error("Creation information service: failed to update creation information",
			"uuid", infoUUID,
			"error", err.Error())
		return model.CreationInformationRow{}, model.NewOperationError(model.MsgCreationInformationNotUpdated, err)
	}

	s.logger.Debug("Creation information service: creation information updated",
		"uuid", infoUUID,
		"last_updated_by_user_uuid", updated.LastUpdatedByUserUUID)

	return updated, nil
}
