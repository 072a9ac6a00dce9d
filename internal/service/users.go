package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/wardrobe-service/internal/models"
	"github.com/pribylovaa/wardrobe-service/internal/pkg/log"
	"github.com/pribylovaa/wardrobe-service/internal/storage"
)

// Входные структуры сервисного слоя.
type CreateUserInput struct {
	ExternalID string
	Name       string
	Username   string
	Email      string
}

type UpdateUserInput struct {
	ExternalID string
	Name       string
	Username   string
	Email      string
}

// CreateUser регистрирует пользователя и возвращает его внутренний id.
//
// Валидация:
//   - external id не должен быть пустым (после TrimSpace).
//
// Поведение:
//   - конфликт уникальности и любые ошибки хранилища -> ErrCreateUser.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (int64, error) {
	const op = "service/users/CreateUser"

	externalID := strings.TrimSpace(input.ExternalID)
	lg := log.From(ctx).With("op", op, "external_id", externalID)

	if externalID == "" {
		lg.Warn("invalid argument: empty external_id")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	id, err := s.wardrobeStorage.CreateUser(ctx, &models.User{
		ExternalID: externalID,
		Name:       input.Name,
		Username:   input.Username,
		Email:      input.Email,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("user already exists", "err", err)
		} else {
			lg.Error("storage error on CreateUser", "err", err)
		}

		return 0, fmt.Errorf("%s: %w", op, ErrCreateUser)
	}

	return id, nil
}

// UserByExternalID возвращает пользователя по external id.
// Отсутствие пользователя - (nil, nil): вызывающий считает его незарегистрированным.
func (s *Service) UserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	const op = "service/users/UserByExternalID"

	lg := log.From(ctx).With("op", op, "external_id", externalID)

	if strings.TrimSpace(externalID) == "" {
		lg.Warn("invalid argument: empty external_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.wardrobeStorage.UserByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Debug("user not registered")

			return nil, nil
		}

		lg.Error("storage error on UserByExternalID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrGetUser)
	}

	return user, nil
}

// UpdateUser перезаписывает name, username и email.
// Отсутствие пользователя от успеха не отличается.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) error {
	const op = "service/users/UpdateUser"

	lg := log.From(ctx).With("op", op, "external_id", input.ExternalID)

	if strings.TrimSpace(input.ExternalID) == "" {
		lg.Warn("invalid argument: empty external_id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	err := s.wardrobeStorage.UpdateUser(ctx, &models.User{
		ExternalID: input.ExternalID,
		Name:       input.Name,
		Username:   input.Username,
		Email:      input.Email,
	})
	if err != nil {
		lg.Error("storage error on UpdateUser", "err", err)

		return fmt.Errorf("%s: %w", op, ErrUpdateUser)
	}

	return nil
}

// DeleteUser удаляет пользователя вместе с предпочтениями и гардеробом.
func (s *Service) DeleteUser(ctx context.Context, externalID string) error {
	const op = "service/users/DeleteUser"

	lg := log.From(ctx).With("op", op, "external_id", externalID)

	if strings.TrimSpace(externalID) == "" {
		lg.Warn("invalid argument: empty external_id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.wardrobeStorage.DeleteUser(ctx, externalID); err != nil {
		lg.Error("storage error on DeleteUser", "err", err)

		return fmt.Errorf("%s: %w", op, ErrDeleteUser)
	}

	lg.Info("user deleted")

	return nil
}
