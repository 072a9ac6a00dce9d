// service содержит операции wardrobe-сервиса:
// - пользователь (регистрация, чтение, обновление, удаление);
// - онбординг и смена типа фигуры (транзакционно в хранилище);
// - гардероб: чтение по категориям, инициализация, поиск и замена варианта.
//
// Сервисный слой логирует причину ошибки и возвращает наружу только
// sentinel операции: детали хранилища в цепочку ошибок не попадают.
package service

import (
	"errors"

	"github.com/pribylovaa/wardrobe-service/internal/storage"
)

var (
	// ErrInvalidArgument - пустой external id или неположительный внутренний id.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound - пользователь не найден (онбординг, смена фигуры, гардероб).
	ErrNotFound = errors.New("user not found")

	ErrCreateUser     = errors.New("failed to create user")
	ErrGetUser        = errors.New("failed to get user")
	ErrUpdateUser     = errors.New("failed to update user")
	ErrDeleteUser     = errors.New("failed to delete user")
	ErrSaveOnboarding = errors.New("failed to save onboarding data")
	ErrUpdateBodyType = errors.New("failed to update user body type")
	ErrCreateWardrobe = errors.New("failed to create user wardrobe")
	ErrGetWardrobe    = errors.New("failed to get user wardrobe")
	ErrFindVariant    = errors.New("failed to get clothing variant")
	ErrSwapVariant    = errors.New("failed to save clothing variant")
)

// Service - операции над пользователями, онбордингом и гардеробом.
type Service struct {
	wardrobeStorage storage.WardrobeStorage
	imagesStorage   storage.ImagesStorage
}

// New создает новый экземпляр Service.
func New(wardrobeStorage storage.WardrobeStorage, imagesStorage storage.ImagesStorage) *Service {
	return &Service{
		wardrobeStorage: wardrobeStorage,
		imagesStorage:   imagesStorage,
	}
}
