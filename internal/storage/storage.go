// storage содержит контракты слоя хранилищ wardrobe-service.
//
// storage.go - пользователи, онбординг и гардероб в БД.
// images.go - контракт выдачи ссылок на изображения каталога (S3/MinIO).
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/wardrobe-service/internal/models"
)

var (
	// ErrNotFound - запись не найдена (пользователь, вариант, строка гардероба).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists - нарушение уникальности (username/email/external id).
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnknownOccasion - ключ повода отсутствует в справочнике occasions.
	ErrUnknownOccasion = errors.New("unknown occasion")
	// ErrUnknownBodyShape - тип фигуры отсутствует в справочнике body_shapes.
	ErrUnknownBodyShape = errors.New("unknown body shape")
)

// Users - операции над записью пользователя.
type Users interface {
	// CreateUser создаёт пользователя и возвращает его внутренний id.
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	// UserByExternalID возвращает пользователя по external id.
	UserByExternalID(ctx context.Context, externalID string) (*models.User, error)
	// UserIDByExternalID возвращает только внутренний id.
	UserIDByExternalID(ctx context.Context, externalID string) (int64, error)
	// UpdateUser перезаписывает name/username/email по external id.
	// Отсутствие строки ошибкой не считается.
	UpdateUser(ctx context.Context, user *models.User) error
	// DeleteUser удаляет пользователя; зависимые строки удаляются каскадом схемы.
	DeleteUser(ctx context.Context, externalID string) error
}

// Onboarding - многошаговые операции, выполняемые в одной транзакции.
type Onboarding interface {
	// SaveOnboarding обновляет анкету, заменяет предпочтения и гардероб.
	// Возвращает внутренний id пользователя.
	SaveOnboarding(ctx context.Context, externalID string, data models.OnboardingData) (int64, error)
	// UpdateBodyType выставляет тип фигуры по имени и пересобирает гардероб.
	UpdateBodyType(ctx context.Context, externalID, bodyType string) (int64, error)
}

// Wardrobe - операции над гардеробом и каталогом.
type Wardrobe interface {
	// DefaultVariantIDs возвращает варианты по умолчанию для типа фигуры.
	DefaultVariantIDs(ctx context.Context, bodyShapeID int) ([]int64, error)
	// CreateWardrobe добавляет в гардероб пачку вариантов.
	CreateWardrobe(ctx context.Context, userID int64, variantIDs []int64) error
	// WardrobeByUserID возвращает гардероб в порядке вставки.
	WardrobeByUserID(ctx context.Context, userID int64) ([]models.WardrobeItem, error)
	// FindClothingVariant возвращает первый вариант, подходящий под фильтр.
	FindClothingVariant(ctx context.Context, filter models.VariantFilter) (*models.ClothingVariant, error)
	// SwapWardrobeVariant заменяет ровно одну строку (user, prev) на новый вариант.
	SwapWardrobeVariant(ctx context.Context, userID, variantID, prevVariantID int64) (*models.UserClothingVariant, error)
}

// WardrobeStorage - верхнеуровневый интерфейс хранилища.
type WardrobeStorage interface {
	Users
	Onboarding
	Wardrobe
	Close()
}
