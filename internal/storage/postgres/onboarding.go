package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/wardrobe-service/internal/models"
	"github.com/pribylovaa/wardrobe-service/internal/storage"
)

// partsTable - таблица предпочтений по частям тела и её колонка-ссылка.
type partsTable struct {
	name   string
	column string
}

var (
	favPartsTable      = partsTable{name: "user_fav_parts", column: "fav_part_id"}
	leastFavPartsTable = partsTable{name: "user_least_fav_parts", column: "least_fav_part_id"}
)

// SaveOnboarding сохраняет анкету онбординга в одной транзакции:
//  1. обновляет справочные поля, location/goal/frustration и onboarded = true;
//  2. заменяет избранные и нелюбимые части тела;
//  3. заменяет поводы месяца (только count > 0, ключи резолвятся по occasions);
//  4. пересобирает гардероб из default_clothing_variants для body_shape_id.
//
// Ошибки: storage.ErrNotFound (нет пользователя), storage.ErrUnknownOccasion,
// иные - как есть. При любой ошибке транзакция откатывается целиком.
func (s *Storage) SaveOnboarding(ctx context.Context, externalID string, data models.OnboardingData) (int64, error) {
	const op = "storage/postgres/onboarding/SaveOnboarding"

	var userID int64
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		q := `
		UPDATE users
		SET age_group_id = $1,
			body_shape_id = $2,
			height_id = $3,
			personal_style_id = $4,
			location = $5,
			goal = $6,
			frustration = $7,
			onboarded = true
		WHERE clerk_id = $8
		RETURNING id
		`

		err := tx.QueryRow(ctx, q,
			data.AgeGroupID,
			data.BodyShapeID,
			data.HeightID,
			data.PersonalStyleID,
			data.Location,
			data.Goal,
			data.Frustration,
			externalID,
		).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrNotFound
			}

			return fmt.Errorf("update user: %w", err)
		}

		if err := replaceParts(ctx, tx, favPartsTable, userID, data.FavParts); err != nil {
			return err
		}

		if err := replaceParts(ctx, tx, leastFavPartsTable, userID, data.LeastFavParts); err != nil {
			return err
		}

		if err := replaceOccasions(ctx, tx, userID, data.MonthlyOccasions); err != nil {
			return err
		}

		return replaceWardrobe(ctx, tx, userID, data.BodyShapeID)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}

// UpdateBodyType выставляет тип фигуры по имени и пересобирает гардероб
// из вариантов по умолчанию. Всё в одной транзакции.
// Ошибки: storage.ErrUnknownBodyShape, storage.ErrNotFound (нет пользователя).
func (s *Storage) UpdateBodyType(ctx context.Context, externalID, bodyType string) (int64, error) {
	const op = "storage/postgres/onboarding/UpdateBodyType"

	var userID int64
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var bodyShapeID int
		err := tx.QueryRow(ctx, `SELECT id FROM body_shapes WHERE name = $1`, bodyType).Scan(&bodyShapeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrUnknownBodyShape
			}

			return fmt.Errorf("resolve body shape: %w", err)
		}

		q := `
		UPDATE users
		SET body_shape_id = $1, onboarded = true
		WHERE clerk_id = $2
		RETURNING id
		`

		if err := tx.QueryRow(ctx, q, bodyShapeID, externalID).Scan(&userID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrNotFound
			}

			return fmt.Errorf("update user: %w", err)
		}

		return replaceWardrobe(ctx, tx, userID, bodyShapeID)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}

// replaceParts удаляет все строки пользователя и вставляет новый список.
// Пустой список только очищает таблицу.
func replaceParts(ctx context.Context, tx pgx.Tx, table partsTable, userID int64, partIDs []int) error {
	del := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table.name)
	if _, err := tx.Exec(ctx, del, userID); err != nil {
		return fmt.Errorf("clear %s: %w", table.name, err)
	}

	if len(partIDs) == 0 {
		return nil
	}

	ins := fmt.Sprintf(`
	INSERT INTO %s (user_id, %s)
	SELECT $1, UNNEST($2::int[])
	`, table.name, table.column)

	if _, err := tx.Exec(ctx, ins, userID, partIDs); err != nil {
		return fmt.Errorf("insert %s: %w", table.name, err)
	}

	return nil
}

// replaceOccasions заменяет поводы месяца пользователя.
// Поводы с count <= 0 отбрасываются; неизвестный ключ валит всю транзакцию.
func replaceOccasions(ctx context.Context, tx pgx.Tx, userID int64, occasions map[string]int) error {
	keys := make([]string, 0, len(occasions))
	for key, count := range occasions {
		if count > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	ids := make([]int, 0, len(keys))
	counts := make([]int, 0, len(keys))

	if len(keys) > 0 {
		resolved, err := occasionIDs(ctx, tx, keys)
		if err != nil {
			return err
		}

		for _, key := range keys {
			id, ok := resolved[key]
			if !ok {
				return fmt.Errorf("%w: %q", storage.ErrUnknownOccasion, key)
			}

			ids = append(ids, id)
			counts = append(counts, occasions[key])
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_monthly_occasions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user_monthly_occasions: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	q := `
	INSERT INTO user_monthly_occasions (user_id, occasion_id, count)
	SELECT $1, o.id, o.count
	FROM UNNEST($2::int[], $3::int[]) AS o(id, count)
	`

	if _, err := tx.Exec(ctx, q, userID, ids, counts); err != nil {
		return fmt.Errorf("insert user_monthly_occasions: %w", err)
	}

	return nil
}

// occasionIDs резолвит ключи поводов в id справочника occasions.
func occasionIDs(ctx context.Context, tx pgx.Tx, keys []string) (map[string]int, error) {
	rows, err := tx.Query(ctx, `SELECT key, id FROM occasions WHERE key = ANY($1::text[])`, keys)
	if err != nil {
		return nil, fmt.Errorf("resolve occasions: %w", err)
	}
	defer rows.Close()

	resolved := make(map[string]int, len(keys))
	for rows.Next() {
		var key string
		var id int
		if err := rows.Scan(&key, &id); err != nil {
			return nil, fmt.Errorf("resolve occasions: scan row: %w", err)
		}

		resolved[key] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve occasions: rows: %w", err)
	}

	return resolved, nil
}

// replaceWardrobe удаляет гардероб пользователя и заполняет его
// вариантами по умолчанию для типа фигуры.
func replaceWardrobe(ctx context.Context, tx pgx.Tx, userID int64, bodyShapeID int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM user_clothing_variants WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear wardrobe: %w", err)
	}

	q := `
	INSERT INTO user_clothing_variants (user_id, clothing_variant_id)
	SELECT $1, clothing_variant_id
	FROM default_clothing_variants
	WHERE body_shape_id = $2
	ORDER BY clothing_variant_id
	`

	if _, err := tx.Exec(ctx, q, userID, bodyShapeID); err != nil {
		return fmt.Errorf("fill wardrobe: %w", err)
	}

	return nil
}
