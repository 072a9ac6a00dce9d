package minio

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ImageURL возвращает ссылку на изображение каталога.
// Ключ объекта: <images_prefix>/<fileName>. При заданном PublicBaseURL ссылка
// собирается от него, иначе выдаётся presigned GET на PresignTTL.
// Пустое имя файла - пустая ссылка без ошибки.
func (s *ImagesStorage) ImageURL(ctx context.Context, fileName string) (string, error) {
	const op = "storage/minio/images/ImageURL"

	if fileName == "" {
		return "", nil
	}

	key := path.Join(s.cfg.ImagesPrefix, fileName)

	if s.cfg.PublicBaseURL != "" {
		base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
		return base + "/" + key, nil
	}

	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, key, s.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}
