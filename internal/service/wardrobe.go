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

// CreateUserWardrobe заполняет гардероб пользователя вариантами по умолчанию
// для типа фигуры. Существующие строки не трогаются.
//
// Поведение:
//   - userID/bodyShapeID <= 0 -> ErrInvalidArgument;
//   - пользователя нет -> ErrNotFound;
//   - иные ошибки -> ErrCreateWardrobe.
func (s *Service) CreateUserWardrobe(ctx context.Context, userID int64, bodyShapeID int) error {
	const op = "service/wardrobe/CreateUserWardrobe"

	lg := log.From(ctx).With("op", op, "user_id", userID, "body_shape_id", bodyShapeID)

	if userID <= 0 || bodyShapeID <= 0 {
		lg.Warn("invalid argument: non-positive id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	variantIDs, err := s.wardrobeStorage.DefaultVariantIDs(ctx, bodyShapeID)
	if err != nil {
		lg.Error("storage error on DefaultVariantIDs", "err", err)

		return fmt.Errorf("%s: %w", op, ErrCreateWardrobe)
	}

	if err := s.wardrobeStorage.CreateWardrobe(ctx, userID, variantIDs); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on CreateWardrobe", "err", err)

		return fmt.Errorf("%s: %w", op, ErrCreateWardrobe)
	}

	lg.Info("user wardrobe created", "items", len(variantIDs))

	return nil
}

// UserWardrobe возвращает гардероб пользователя, сгруппированный по category_id
// в порядке первого появления категории. Пользователь без строк гардероба
// получает пустой (не nil) гардероб.
//
// Поведение:
//   - пользователя нет -> ErrNotFound;
//   - иные ошибки -> ErrGetWardrobe.
func (s *Service) UserWardrobe(ctx context.Context, externalID string) (models.Wardrobe, error) {
	const op = "service/wardrobe/UserWardrobe"

	lg := log.From(ctx).With("op", op, "external_id", externalID)

	if strings.TrimSpace(externalID) == "" {
		lg.Warn("invalid argument: empty external_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	userID, err := s.wardrobeStorage.UserIDByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on UserIDByExternalID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrGetWardrobe)
	}

	items, err := s.wardrobeStorage.WardrobeByUserID(ctx, userID)
	if err != nil {
		lg.Error("storage error on WardrobeByUserID", "user_id", userID, "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrGetWardrobe)
	}

	wardrobe := make(models.Wardrobe, 0)
	byCategory := make(map[int]int) // category_id -> индекс в wardrobe
	for _, item := range items {
		item.ImageURL = s.imageURL(ctx, lg, item.ImageFileName)

		idx, ok := byCategory[item.CategoryID]
		if !ok {
			idx = len(wardrobe)
			byCategory[item.CategoryID] = idx
			wardrobe = append(wardrobe, models.WardrobeCategory{CategoryID: item.CategoryID})
		}
		wardrobe[idx].Items = append(wardrobe[idx].Items, item)
	}

	return wardrobe, nil
}

// FindClothingVariant возвращает первый вариант каталога под фильтр.
// Ничего не подошло - (nil, nil).
func (s *Service) FindClothingVariant(ctx context.Context, filter models.VariantFilter) (*models.ClothingVariant, error) {
	const op = "service/wardrobe/FindClothingVariant"

	lg := log.From(ctx).With("op", op)

	variant, err := s.wardrobeStorage.FindClothingVariant(ctx, filter)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Debug("no clothing variant matches filter")

			return nil, nil
		}

		lg.Error("storage error on FindClothingVariant", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrFindVariant)
	}

	variant.ImageURL = s.imageURL(ctx, lg, variant.ImageFileName)

	return variant, nil
}

// SwapWardrobeVariant переводит одну строку гардероба (userID, prevVariantID)
// на variantID. Подходящей строки нет - (nil, nil), гардероб не меняется.
func (s *Service) SwapWardrobeVariant(ctx context.Context, userID, variantID, prevVariantID int64) (*models.UserClothingVariant, error) {
	const op = "service/wardrobe/SwapWardrobeVariant"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", userID,
		"clothing_variant_id", variantID,
		"prev_clothing_variant_id", prevVariantID,
	)

	if userID <= 0 || variantID <= 0 || prevVariantID <= 0 {
		lg.Warn("invalid argument: non-positive id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	row, err := s.wardrobeStorage.SwapWardrobeVariant(ctx, userID, variantID, prevVariantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Debug("no wardrobe row to swap")

			return nil, nil
		}

		lg.Error("storage error on SwapWardrobeVariant", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrSwapVariant)
	}

	return row, nil
}
