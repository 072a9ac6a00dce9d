// models содержит доменные сущности wardrobe-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// User - пользователь приложения.
// ExternalID выдаётся внешним identity-провайдером и непрозрачен для сервиса.
// Ссылки на справочники равны nil, пока пользователь не прошёл онбординг.
type User struct {
	ID              int64
	ExternalID      string
	Name            string
	Username        string
	Email           string
	Location        string
	Goal            string
	Frustration     string
	AgeGroupID      *int
	BodyShapeID     *int
	HeightID        *int
	PersonalStyleID *int
	Onboarded       bool
	CreatedAt       time.Time
}

// OnboardingData - полный набор ответов онбординга.
// Сохранение всегда заменяет предыдущие предпочтения целиком.
type OnboardingData struct {
	AgeGroupID      int
	BodyShapeID     int
	HeightID        int
	PersonalStyleID int
	Location        string
	Goal            string
	Frustration     string
	FavParts        []int
	LeastFavParts   []int
	// MonthlyOccasions - ключ повода (например "work") -> сколько раз в месяц.
	MonthlyOccasions map[string]int
}
