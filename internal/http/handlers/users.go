package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/wardrobe-service/internal/http/errors"
	"github.com/pribylovaa/wardrobe-service/internal/service"
)

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in createUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := h.service.CreateUser(r.Context(), service.CreateUserInput{
		ExternalID: in.ExternalID,
		Name:       in.Name,
		Username:   in.Username,
		Email:      in.Email,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{ID: id})
}

// GetUser отдаёт 404, если пользователь не зарегистрирован.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.UserByExternalID(r.Context(), externalIDParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if user == nil {
		apierrors.WriteError(w, r, apierrors.ErrUserNotRegistered)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var in updateUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	err := h.service.UpdateUser(r.Context(), service.UpdateUserInput{
		ExternalID: externalIDParam(r), // external id берём из пути.
		Name:       in.Name,
		Username:   in.Username,
		Email:      in.Email,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), externalIDParam(r)); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
