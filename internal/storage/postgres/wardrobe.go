package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/wardrobe-service/internal/models"
	"github.com/pribylovaa/wardrobe-service/internal/storage"
)

// DefaultVariantIDs возвращает варианты гардероба по умолчанию для типа фигуры
// в порядке возрастания clothing_variant_id.
func (s *Storage) DefaultVariantIDs(ctx context.Context, bodyShapeID int) ([]int64, error) {
	const op = "storage/postgres/wardrobe/DefaultVariantIDs"

	q := `
	SELECT clothing_variant_id
	FROM default_clothing_variants
	WHERE body_shape_id = $1
	ORDER BY clothing_variant_id
	`

	rows, err := s.db.Query(ctx, q, bodyShapeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// CreateWardrobe добавляет пользователю строки гардероба пачкой.
// Пустой список - no-op. Ошибки: storage.ErrNotFound, если пользователь
// или вариант отсутствуют (нарушение FK).
func (s *Storage) CreateWardrobe(ctx context.Context, userID int64, variantIDs []int64) error {
	const op = "storage/postgres/wardrobe/CreateWardrobe"

	if len(variantIDs) == 0 {
		return nil
	}

	q := `
	INSERT INTO user_clothing_variants (user_id, clothing_variant_id)
	SELECT $1, UNNEST($2::int[])
	`

	if _, err := s.db.Exec(ctx, q, userID, variantIDs); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// WardrobeByUserID возвращает строки гардероба пользователя с атрибутами
// варианта и изделия, упорядоченные по id строки гардероба.
func (s *Storage) WardrobeByUserID(ctx context.Context, userID int64) ([]models.WardrobeItem, error) {
	const op = "storage/postgres/wardrobe/WardrobeByUserID"

	q := `
	SELECT
		ucv.id,
		ci.category_id,
		ci.subcategory_id,
		ci.colour_type_id,
		cv.name,
		cv.top_sleeve_type_id,
		cv.blouse_sleeve_type_id,
		cv.neckline_id,
		cv.dress_cut_id,
		cv.bottom_cut_id,
		cv.short_cut_id,
		cv.skirt_cut_id,
		cv.image_file_name,
		cv.id
	FROM user_clothing_variants ucv
	JOIN clothing_variants cv ON ucv.clothing_variant_id = cv.id
	JOIN clothing_items ci ON cv.clothing_item_id = ci.id
	WHERE ucv.user_id = $1
	ORDER BY ucv.id
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.WardrobeItem, 0)
	for rows.Next() {
		var item models.WardrobeItem
		if err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.SubcategoryID,
			&item.ColourTypeID,
			&item.Name,
			&item.TopSleeveTypeID,
			&item.BlouseSleeveTypeID,
			&item.NecklineID,
			&item.DressCutID,
			&item.BottomCutID,
			&item.ShortCutID,
			&item.SkirtCutID,
			&item.ImageFileName,
			&item.ClothingVariantID,
		); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return items, nil
}

// FindClothingVariant ищет первый вариант каталога (по cv.id), подходящий
// под фильтр. Незаданное поле фильтра не ограничивает выборку.
// Ошибки: storage.ErrNotFound, если ничего не подошло.
func (s *Storage) FindClothingVariant(ctx context.Context, filter models.VariantFilter) (*models.ClothingVariant, error) {
	const op = "storage/postgres/wardrobe/FindClothingVariant"

	q := `
	SELECT cv.id, cv.name, cv.image_file_name
	FROM clothing_variants cv
	JOIN clothing_items ci ON cv.clothing_item_id = ci.id
	WHERE ($1::int IS NULL OR cv.top_sleeve_type_id = $1::int)
		AND ($2::int IS NULL OR cv.blouse_sleeve_type_id = $2::int)
		AND ($3::int IS NULL OR cv.neckline_id = $3::int)
		AND ($4::int IS NULL OR cv.dress_cut_id = $4::int)
		AND ($5::int IS NULL OR cv.bottom_cut_id = $5::int)
		AND ($6::int IS NULL OR cv.short_cut_id = $6::int)
		AND ($7::int IS NULL OR cv.skirt_cut_id = $7::int)
		AND ($8::int IS NULL OR ci.colour_type_id = $8::int)
	ORDER BY cv.id
	LIMIT 1
	`

	var variant models.ClothingVariant
	err := s.db.QueryRow(ctx, q,
		filter.TopSleeveTypeID,
		filter.BlouseSleeveTypeID,
		filter.NecklineID,
		filter.DressCutID,
		filter.BottomCutID,
		filter.ShortCutID,
		filter.SkirtCutID,
		filter.ColourTypeID,
	).Scan(&variant.ID, &variant.Name, &variant.ImageFileName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &variant, nil
}

// SwapWardrobeVariant переводит ровно одну строку гардероба (user, prev) на
// новый вариант. При дублях берётся строка с наименьшим id.
// Ошибки: storage.ErrNotFound, если подходящей строки нет.
func (s *Storage) SwapWardrobeVariant(ctx context.Context, userID, variantID, prevVariantID int64) (*models.UserClothingVariant, error) {
	const op = "storage/postgres/wardrobe/SwapWardrobeVariant"

	q := `
	UPDATE user_clothing_variants
	SET clothing_variant_id = $1
	WHERE id = (
		SELECT id
		FROM user_clothing_variants
		WHERE user_id = $2 AND clothing_variant_id = $3
		ORDER BY id
		LIMIT 1
	)
	RETURNING id, user_id, clothing_variant_id
	`

	var row models.UserClothingVariant
	err := s.db.QueryRow(ctx, q, variantID, userID, prevVariantID).Scan(&row.ID, &row.UserID, &row.ClothingVariantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &row, nil
}
