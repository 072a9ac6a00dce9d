package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/wardrobe-service/internal/models"
	"github.com/pribylovaa/wardrobe-service/internal/storage"
)

// userColumns - единый список колонок таблицы users для SELECT/RETURNING.
// Текстовые поля анкеты до онбординга NULL, наружу отдаём пустую строку.
const userColumns = `
id, clerk_id, name, username, email,
COALESCE(location, ''), COALESCE(goal, ''), COALESCE(frustration, ''),
age_group_id, body_shape_id, height_id, personal_style_id,
onboarded, created_at
`

// scanUser сканирует одну строку пользователя в доменную модель.
func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User

	if err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Location,
		&user.Goal,
		&user.Frustration,
		&user.AgeGroupID,
		&user.BodyShapeID,
		&user.HeightID,
		&user.PersonalStyleID,
		&user.Onboarded,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser вставляет пользователя (только данные регистрации) и возвращает id.
// Ошибки: storage.ErrAlreadyExists при конфликте уникальности, иные - как есть.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	const op = "storage/postgres/users/CreateUser"

	q := `
	INSERT INTO users (name, username, email, clerk_id)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	var id int64
	err := s.db.QueryRow(ctx, q, user.Name, user.Username, user.Email, user.ExternalID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UserByExternalID возвращает пользователя по clerk_id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) UserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	const op = "storage/postgres/users/UserByExternalID"

	q := `SELECT ` + userColumns + ` FROM users WHERE clerk_id = $1`

	user, err := scanUser(s.db.QueryRow(ctx, q, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserIDByExternalID возвращает внутренний id по clerk_id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) UserIDByExternalID(ctx context.Context, externalID string) (int64, error) {
	const op = "storage/postgres/users/UserIDByExternalID"

	var id int64
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, externalID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateUser перезаписывает name, username и email по clerk_id.
// Ноль затронутых строк ошибкой не считается.
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "storage/postgres/users/UpdateUser"

	q := `
	UPDATE users
	SET name = $1, username = $2, email = $3
	WHERE clerk_id = $4
	`

	if _, err := s.db.Exec(ctx, q, user.Name, user.Username, user.Email, user.ExternalID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteUser удаляет пользователя по clerk_id.
// Предпочтения и гардероб удаляются через ON DELETE CASCADE.
func (s *Storage) DeleteUser(ctx context.Context, externalID string) error {
	const op = "storage/postgres/users/DeleteUser"

	if _, err := s.db.Exec(ctx, `DELETE FROM users WHERE clerk_id = $1`, externalID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
