package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/wardrobe-service/internal/http/errors"
)

func (h *Handlers) GetWardrobe(w http.ResponseWriter, r *http.Request) {
	wardrobe, err := h.service.UserWardrobe(r.Context(), externalIDParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wardrobeFromModel(wardrobe))
}

func (h *Handlers) CreateWardrobe(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createWardrobeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.CreateUserWardrobe(r.Context(), userID, in.BodyShapeID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SwapVariant: 200 с обновлённой строкой или 204, если строки (user, prev) нет.
func (h *Handlers) SwapVariant(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in swapVariantRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	row, err := h.service.SwapWardrobeVariant(r.Context(), userID, in.ClothingVariantID, in.PrevClothingVariantID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if row == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, userClothingVariantResponse{
		ID:                row.ID,
		UserID:            row.UserID,
		ClothingVariantID: row.ClothingVariantID,
	})
}

func (h *Handlers) FindVariant(w http.ResponseWriter, r *http.Request) {
	var in variantFilterRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	variant, err := h.service.FindClothingVariant(r.Context(), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if variant == nil {
		apierrors.WriteError(w, r, apierrors.ErrVariantNotFound)
		return
	}

	writeJSON(w, http.StatusOK, clothingVariantResponse{
		ID:            variant.ID,
		Name:          variant.Name,
		ImageFileName: variant.ImageFileName,
		ImageURL:      variant.ImageURL,
	})
}
