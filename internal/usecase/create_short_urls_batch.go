package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

// CreateShortURLsBatch создает короткие URL для нескольких строковых URL.
// Ответ содержит короткие URL в порядке входа
func (u *LinkUsecase) CreateShortURLsBatch(ctx context.Context, urlStrings []string, userID string) ([]string, error) {
	originalURLs := make([]model.URL, len(urlStrings))

	for i, urlString := range urlStrings {
		originalURL, err := normalizeURL(urlString)
		if err != nil {
			return nil, fmt.Errorf("URL at index %d: %w", i, err)
		}
		originalURLs[i] = originalURL
	}

	links, err := u.allocator.CreateLinks(ctx, originalURLs, userID)
	if err != nil {
		u.logger.Error("failed to create short URLs batch",
			zap.Int("count", len(urlStrings)),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, wrapError(err)
	}

	shortURLs := make([]string, len(links))
	for i, link := range links {
		shortURL, err := u.buildShortURL(link.Code)
		if err != nil {
			return nil, err
		}
		shortURLs[i] = shortURL
	}

	return shortURLs, nil
}
