package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/wardrobe-service/internal/http/errors"
)

func (h *Handlers) SaveOnboarding(w http.ResponseWriter, r *http.Request) {
	var in onboardingRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	userID, err := h.service.SaveOnboarding(r.Context(), externalIDParam(r), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userIDResponse{UserID: userID})
}

func (h *Handlers) UpdateBodyType(w http.ResponseWriter, r *http.Request) {
	var in bodyTypeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	userID, err := h.service.UpdateBodyType(r.Context(), externalIDParam(r), in.BodyType)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userIDResponse{UserID: userID})
}
