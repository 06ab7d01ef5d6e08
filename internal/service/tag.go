package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/umbreon222/Todo-List-Api/internal/logger"
	"github.com/umbreon222/Todo-List-Api/internal/model"
	"github.com/umbreon222/Todo-List-Api/internal/validate"
)

type Tag struct {
	tagStore model.TagStore
	tx       model.Transactor
	infos    *CreationInformation
	logger   *logger.Logger
}

func NewTag(
	tagStore model.TagStore,
	tx model.Transactor,
	infos *CreationInformation,
	logger *logger.Logger,
) *Tag {
	return &Tag{
		tagStore: tagStore,
		tx:       tx,
		infos:    infos,
		logger:   logger,
	}
}

func (s *Tag) AllTags(ctx context.Context) ([]model.TagRow, error) {
	tags, err := s.tagStore.All(ctx)
	if err != nil {
		s.logger.Error("Tag service: failed to list tags", "error", err.Error())
		return nil, model.NewOperationError(model.MsgInternalError, fmt.Errorf("failed to list tags: %w", err))
	}

	return tags, nil
}

func (s *Tag) CreateTag(ctx context.Context, infoInput model.CreateCreationInformationInput, input model.CreateTagInput) (model.TagRow, error) {
	if err := validate.Struct(infoInput); err != nil {
		return model.TagRow{}, model.NewOperationError(model.MsgTagNotCreated, err)
	}
	if err := validate.Struct(input); err != nil {
		return model.TagRow{}, model.NewOperationError(model.MsgTagNotCreated, err)
	}

	var saved model.TagRow
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		tagUUID := uuid.NewString()

		info, err := s.infos.CreateCreationInformation(ctx, infoInput)
		if err != nil {
			return err
		}

		tag := model.TagRow{
			UUID:                    tagUUID,
			Title:                   input.Title,
			CreationInformationUUID: info.UUID,
		}
		if err := s.tagStore.Create(ctx, tag); err != nil {
			return err
		}

		saved, err = readBack(ctx, s.tagStore.GetByUUID, model.KindTag, tagUUID)
		return err
	})
	if err != nil {
		s.logger.Error("Tag service: failed to create tag",
			"title", input.Title,
			"error", err.Error())
		return model.TagRow{}, model.NewOperationError(model.MsgTagNotCreated, err)
	}

	s.logger.Info("Tag service: tag created", "uuid", saved.UUID)

	return saved, nil
}

// GetTagByUUID returns nil when no tag has the given UUID.
func (s *Tag) GetTagByUUID(ctx context.Context, uuid string) (*model.TagRow, error) {
	return getOptional(ctx, s.tagStore.GetByUUID, uuid)
}

func (s *Tag) TagExists(ctx context.Context, uuid string) (bool, error) {
	found, err := s.tagStore.Exists(ctx, uuid)
	if err != nil {
		return false, fmt.Errorf("failed to check tag existence: %w", err)
	}
	return found, nil
}
