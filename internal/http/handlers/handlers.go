// handlers содержит REST-эндпоинты wardrobe-service поверх service.Service.
// Пути и коды ответов собраны в internal/http/router.go.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/wardrobe-service/internal/http/errors"
	"github.com/pribylovaa/wardrobe-service/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	service *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{service: svc}
}

// writeJSON - единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict - строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return apierrors.ErrInvalidBody
	}
	return nil
}

// externalIDParam - external id из пути; пустой отсекается сервисом.
func externalIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "external_id"))
}

// userIDParam - положительный внутренний id пользователя из пути.
func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		return 0, apierrors.ErrInvalidBody
	}
	return id, nil
}
