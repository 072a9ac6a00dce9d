package service

import (
	"context"
	"log/slog"
)

// imageURL возвращает ссылку на изображение варианта.
// Ошибка выдачи ссылки не валит операцию: элемент отдаётся без URL.
func (s *Service) imageURL(ctx context.Context, lg *slog.Logger, fileName string) string {
	if s.imagesStorage == nil || fileName == "" {
		return ""
	}

	url, err := s.imagesStorage.ImageURL(ctx, fileName)
	if err != nil {
		lg.Warn("failed to build image url", "file", fileName, "err", err)

		return ""
	}

	return url
}
