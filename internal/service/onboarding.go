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

// SaveOnboarding сохраняет ответы онбординга и пересобирает гардероб
// из вариантов по умолчанию для выбранного типа фигуры.
//
// Поведение:
//   - нет пользователя -> ErrNotFound;
//   - неизвестный повод и любые иные ошибки -> ErrSaveOnboarding,
//     изменения откатываются целиком.
//
// Возвращает внутренний id пользователя.
func (s *Service) SaveOnboarding(ctx context.Context, externalID string, data models.OnboardingData) (int64, error) {
	const op = "service/onboarding/SaveOnboarding"

	lg := log.From(ctx).With("op", op, "external_id", externalID)

	if strings.TrimSpace(externalID) == "" {
		lg.Warn("invalid argument: empty external_id")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	userID, err := s.wardrobeStorage.SaveOnboarding(ctx, externalID, data)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrUnknownOccasion):
			lg.Warn("unknown occasion in onboarding data", "err", err)

			return 0, fmt.Errorf("%s: %w", op, ErrSaveOnboarding)
		default:
			lg.Error("storage error on SaveOnboarding", "err", err)

			return 0, fmt.Errorf("%s: %w", op, ErrSaveOnboarding)
		}
	}

	lg.Info("onboarding saved", "user_id", userID, "body_shape_id", data.BodyShapeID)

	return userID, nil
}

// UpdateBodyType меняет тип фигуры по его имени и пересобирает гардероб.
//
// Поведение:
//   - нет пользователя -> ErrNotFound;
//   - неизвестный тип фигуры и иные ошибки -> ErrUpdateBodyType.
func (s *Service) UpdateBodyType(ctx context.Context, externalID, bodyType string) (int64, error) {
	const op = "service/onboarding/UpdateBodyType"

	lg := log.From(ctx).With("op", op, "external_id", externalID, "body_type", bodyType)

	if strings.TrimSpace(externalID) == "" {
		lg.Warn("invalid argument: empty external_id")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	userID, err := s.wardrobeStorage.UpdateBodyType(ctx, externalID, bodyType)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrUnknownBodyShape):
			lg.Warn("unknown body shape")

			return 0, fmt.Errorf("%s: %w", op, ErrUpdateBodyType)
		default:
			lg.Error("storage error on UpdateBodyType", "err", err)

			return 0, fmt.Errorf("%s: %w", op, ErrUpdateBodyType)
		}
	}

	lg.Info("body type updated", "user_id", userID)

	return userID, nil
}
