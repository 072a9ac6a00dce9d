package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pribylovaa/wardrobe-service/internal/models"
)

// Запросы и ответы REST API. Имена полей JSON - snake_case как в схеме БД.

type createUserRequest struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}

type createUserResponse struct {
	ID int64 `json:"id"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userResponse struct {
	ID              int64  `json:"id"`
	ExternalID      string `json:"external_id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Location        string `json:"location"`
	Goal            string `json:"goal"`
	Frustration     string `json:"frustration"`
	AgeGroupID      *int   `json:"age_group_id"`
	BodyShapeID     *int   `json:"body_shape_id"`
	HeightID        *int   `json:"height_id"`
	PersonalStyleID *int   `json:"personal_style_id"`
	Onboarded       bool   `json:"onboarded"`
	CreatedAt       int64  `json:"created_at"` // Unix UTC
}

func userFromModel(u *models.User) userResponse {
	return userResponse{
		ID:              u.ID,
		ExternalID:      u.ExternalID,
		Name:            u.Name,
		Username:        u.Username,
		Email:           u.Email,
		Location:        u.Location,
		Goal:            u.Goal,
		Frustration:     u.Frustration,
		AgeGroupID:      u.AgeGroupID,
		BodyShapeID:     u.BodyShapeID,
		HeightID:        u.HeightID,
		PersonalStyleID: u.PersonalStyleID,
		Onboarded:       u.Onboarded,
		CreatedAt:       u.CreatedAt.UTC().Unix(),
	}
}

type onboardingRequest struct {
	AgeGroupID       int            `json:"age_group_id"`
	BodyShapeID      int            `json:"body_shape_id"`
	HeightID         int            `json:"height_id"`
	PersonalStyleID  int            `json:"personal_style_id"`
	Location         string         `json:"location"`
	Goal             string         `json:"goal"`
	Frustration      string         `json:"frustration"`
	FavParts         []int          `json:"fav_parts"`
	LeastFavParts    []int          `json:"least_fav_parts"`
	MonthlyOccasions map[string]int `json:"monthly_occasions"`
}

func (r onboardingRequest) toModel() models.OnboardingData {
	return models.OnboardingData{
		AgeGroupID:       r.AgeGroupID,
		BodyShapeID:      r.BodyShapeID,
		HeightID:         r.HeightID,
		PersonalStyleID:  r.PersonalStyleID,
		Location:         r.Location,
		Goal:             r.Goal,
		Frustration:      r.Frustration,
		FavParts:         r.FavParts,
		LeastFavParts:    r.LeastFavParts,
		MonthlyOccasions: r.MonthlyOccasions,
	}
}

type bodyTypeRequest struct {
	BodyType string `json:"body_type"`
}

type userIDResponse struct {
	UserID int64 `json:"user_id"`
}

type wardrobeItemResponse struct {
	ID                 int64  `json:"id"`
	CategoryID         int    `json:"category_id"`
	SubcategoryID      *int   `json:"subcategory_id"`
	ColourTypeID       *int   `json:"colour_type_id"`
	Name               string `json:"name"`
	TopSleeveTypeID    *int   `json:"top_sleeve_type_id"`
	BlouseSleeveTypeID *int   `json:"blouse_sleeve_type_id"`
	NecklineID         *int   `json:"neckline_id"`
	DressCutID         *int   `json:"dress_cut_id"`
	BottomCutID        *int   `json:"bottom_cut_id"`
	ShortCutID         *int   `json:"short_cut_id"`
	SkirtCutID         *int   `json:"skirt_cut_id"`
	ImageFileName      string `json:"image_file_name"`
	ImageURL           string `json:"image_url,omitempty"`
	ClothingVariantID  int64  `json:"clothing_variant_id"`
}

// wardrobeCategoryResponse - одна категория гардероба.
type wardrobeCategoryResponse struct {
	categoryID int
	items      []wardrobeItemResponse
}

// wardrobeResponse - JSON-объект category_id -> элементы.
// Ключи пишутся в порядке категорий, а не в порядке сортировки map.
type wardrobeResponse []wardrobeCategoryResponse

func (w wardrobeResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range w {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(c.categoryID))
		buf.WriteString(`":`)

		items, err := json.Marshal(c.items)
		if err != nil {
			return nil, err
		}
		buf.Write(items)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func wardrobeFromModel(w models.Wardrobe) wardrobeResponse {
	out := make(wardrobeResponse, 0, len(w))
	for _, category := range w {
		list := make([]wardrobeItemResponse, 0, len(category.Items))
		for _, it := range category.Items {
			list = append(list, wardrobeItemResponse{
				ID:                 it.ID,
				CategoryID:         it.CategoryID,
				SubcategoryID:      it.SubcategoryID,
				ColourTypeID:       it.ColourTypeID,
				Name:               it.Name,
				TopSleeveTypeID:    it.TopSleeveTypeID,
				BlouseSleeveTypeID: it.BlouseSleeveTypeID,
				NecklineID:         it.NecklineID,
				DressCutID:         it.DressCutID,
				BottomCutID:        it.BottomCutID,
				ShortCutID:         it.ShortCutID,
				SkirtCutID:         it.SkirtCutID,
				ImageFileName:      it.ImageFileName,
				ImageURL:           it.ImageURL,
				ClothingVariantID:  it.ClothingVariantID,
			})
		}
		out = append(out, wardrobeCategoryResponse{categoryID: category.CategoryID, items: list})
	}
	return out
}

type createWardrobeRequest struct {
	BodyShapeID int `json:"body_shape_id"`
}

type swapVariantRequest struct {
	ClothingVariantID     int64 `json:"clothing_variant_id"`
	PrevClothingVariantID int64 `json:"prev_clothing_variant_id"`
}

type userClothingVariantResponse struct {
	ID                int64 `json:"id"`
	UserID            int64 `json:"user_id"`
	ClothingVariantID int64 `json:"clothing_variant_id"`
}

type variantFilterRequest struct {
	TopSleeveTypeID    *int `json:"top_sleeve_type_id"`
	BlouseSleeveTypeID *int `json:"blouse_sleeve_type_id"`
	NecklineID         *int `json:"neckline_id"`
	DressCutID         *int `json:"dress_cut_id"`
	BottomCutID        *int `json:"bottom_cut_id"`
	ShortCutID         *int `json:"short_cut_id"`
	SkirtCutID         *int `json:"skirt_cut_id"`
	ColourTypeID       *int `json:"colour_type_id"`
}

func (r variantFilterRequest) toModel() models.VariantFilter {
	return models.VariantFilter{
		TopSleeveTypeID:    r.TopSleeveTypeID,
		BlouseSleeveTypeID: r.BlouseSleeveTypeID,
		NecklineID:         r.NecklineID,
		DressCutID:         r.DressCutID,
		BottomCutID:        r.BottomCutID,
		ShortCutID:         r.ShortCutID,
		SkirtCutID:         r.SkirtCutID,
		ColourTypeID:       r.ColourTypeID,
	}
}

type clothingVariantResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ImageFileName string `json:"image_file_name"`
	ImageURL      string `json:"image_url,omitempty"`
}
