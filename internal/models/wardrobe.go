package models

// WardrobeItem - строка гардероба пользователя вместе с данными каталога.
type WardrobeItem struct {
	ID                 int64
	ClothingVariantID  int64
	CategoryID         int
	SubcategoryID      *int
	ColourTypeID       *int
	Name               string
	TopSleeveTypeID    *int
	BlouseSleeveTypeID *int
	NecklineID         *int
	DressCutID         *int
	BottomCutID        *int
	ShortCutID         *int
	SkirtCutID         *int
	ImageFileName      string
	ImageURL           string
}

// WardrobeCategory - элементы гардероба одной категории в порядке ID.
type WardrobeCategory struct {
	CategoryID int
	Items      []WardrobeItem
}

// Wardrobe - гардероб, сгруппированный по category_id.
// Категории идут в порядке первого появления в выборке.
type Wardrobe []WardrobeCategory

// VariantFilter - фильтр поиска варианта одежды.
// nil-поле не ограничивает выборку, заданные поля объединяются через AND.
type VariantFilter struct {
	TopSleeveTypeID    *int
	BlouseSleeveTypeID *int
	NecklineID         *int
	DressCutID         *int
	BottomCutID        *int
	ShortCutID         *int
	SkirtCutID         *int
	ColourTypeID       *int
}

// ClothingVariant - найденный вариант каталога.
type ClothingVariant struct {
	ID            int64
	Name          string
	ImageFileName string
	ImageURL      string
}

// UserClothingVariant - запись гардероба (user, clothing variant).
type UserClothingVariant struct {
	ID                int64
	UserID            int64
	ClothingVariantID int64
}
