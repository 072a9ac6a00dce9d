package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/wardrobe-service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid_argument", fmt.Errorf("op: %w", service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument", "invalid argument"},
		{"invalid_body", ErrInvalidBody, http.StatusBadRequest, "invalid_argument", "invalid request"},
		{"not_found", fmt.Errorf("op: %w", service.ErrNotFound), http.StatusNotFound, "not_found", "user not found"},
		{"not_registered", ErrUserNotRegistered, http.StatusNotFound, "not_found", "user not registered"},
		{"variant_not_found", ErrVariantNotFound, http.StatusNotFound, "not_found", "clothing variant not found"},
		{"save_onboarding", fmt.Errorf("op: %w", service.ErrSaveOnboarding), http.StatusInternalServerError, "internal", "failed to save onboarding data"},
		{"swap_variant", fmt.Errorf("op: %w", service.ErrSwapVariant), http.StatusInternalServerError, "internal", "failed to save clothing variant"},
		{"unknown", errors.New("boom: password=secret"), http.StatusInternalServerError, "internal", "internal error"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.Equal(t, tc.wantMsg, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

// Сервис не пропускает наружу ошибки контекста: дедлайн запроса приходит
// как sentinel операции, а голая ошибка контекста - как internal.
func TestToHTTP_ContextErrors_MapAsInternal(t *testing.T) {
	gotStatus, resp := ToHTTP(fmt.Errorf("op: %w", context.DeadlineExceeded))
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal error", resp.Error.Message)

	gotStatus, resp = ToHTTP(fmt.Errorf("op: %w", service.ErrGetUser))
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, service.ErrGetUser.Error(), resp.Error.Message)
}

func TestWriteError_EnvelopeWithRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/x/wardrobe", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()

	WriteError(rr, req, fmt.Errorf("op: %w", service.ErrGetWardrobe))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "internal", body.Error.Code)
	require.Equal(t, "failed to get user wardrobe", body.Error.Message)
	require.Equal(t, "rid-1", body.Error.RequestID)
}
