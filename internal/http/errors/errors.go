// errors стандартизирует ответы об ошибках HTTP-слоя wardrobe-service.
// На вход принимает ошибку сервисного слоя (sentinel операции), на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный code и безопасное message без деталей хранилища.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/wardrobe-service/internal/service"
)

var (
	// ErrInvalidBody - тело запроса не разобрано или id в пути некорректен.
	ErrInvalidBody = errors.New("invalid request")
	// ErrUserNotRegistered - пользователь с таким external id не зарегистрирован.
	ErrUserNotRegistered = errors.New("user not registered")
	// ErrVariantNotFound - под фильтр не подошёл ни один вариант.
	ErrVariantNotFound = errors.New("clothing variant not found")
)

// APIError - единый формат для фронта.
// Code - короткий стабильный код для машиночитаемой обработки на FE.
// Message - безопасное человекочитаемое описание.
// RequestID - прокидывается из X-Request-Id, если есть.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse - корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// operationErrors - sentinel-ы операций сервиса; их текст отдаётся как message.
var operationErrors = []error{
	service.ErrCreateUser,
	service.ErrGetUser,
	service.ErrUpdateUser,
	service.ErrDeleteUser,
	service.ErrSaveOnboarding,
	service.ErrUpdateBodyType,
	service.ErrCreateWardrobe,
	service.ErrGetWardrobe,
	service.ErrFindVariant,
	service.ErrSwapVariant,
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal;
//   - ErrInvalidArgument/ErrInvalidBody -> 400;
//   - ErrNotFound/ErrUserNotRegistered/ErrVariantNotFound -> 404;
//   - sentinel операции -> 500, message = текст sentinel;
//   - прочее -> 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	switch {
	case err == nil:
		return internal()
	case errors.Is(err, service.ErrInvalidArgument):
		return reply(http.StatusBadRequest, "invalid_argument", "invalid argument")
	case errors.Is(err, ErrInvalidBody):
		return reply(http.StatusBadRequest, "invalid_argument", ErrInvalidBody.Error())
	case errors.Is(err, service.ErrNotFound):
		return reply(http.StatusNotFound, "not_found", service.ErrNotFound.Error())
	case errors.Is(err, ErrUserNotRegistered):
		return reply(http.StatusNotFound, "not_found", ErrUserNotRegistered.Error())
	case errors.Is(err, ErrVariantNotFound):
		return reply(http.StatusNotFound, "not_found", ErrVariantNotFound.Error())
	}

	for _, opErr := range operationErrors {
		if errors.Is(err, opErr) {
			return reply(http.StatusInternalServerError, "internal", opErr.Error())
		}
	}

	return internal()
}

// WriteError - хелпер для HTTP-хендлеров.
// Пишет статус и тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func reply(status int, code, msg string) (int, ErrorResponse) {
	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

func internal() (int, ErrorResponse) {
	return reply(http.StatusInternalServerError, "internal", "internal error")
}
