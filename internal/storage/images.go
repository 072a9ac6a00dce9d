package storage

import "context"

// Images - контракт выдачи ссылок на изображения каталога.
type Images interface {
	// ImageURL возвращает ссылку на изображение по имени файла из clothing_variants.
	ImageURL(ctx context.Context, fileName string) (string, error)
}

// ImagesStorage - алиас-обёртка для внедрения зависимости.
type ImagesStorage interface {
	Images
}
