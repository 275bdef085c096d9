package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

const (
	maxURLLength         = 2048
	maxTitleLength       = 500
	maxDescriptionLength = 10000
)

// CreateShortURLFromString создает короткий URL из строки оригинального URL
func (u *LinkUsecase) CreateShortURLFromString(ctx context.Context, urlString string, userID string) (string, error) {
	return u.CreateShortURL(ctx, model.ShortenRequest{URL: urlString}, userID)
}

// CreateShortURL валидирует запрос, создаёт ссылку с уникальным кодом и возвращает полный короткий URL
func (u *LinkUsecase) CreateShortURL(ctx context.Context, req model.ShortenRequest, userID string) (string, error) {
	originalURL, err := normalizeURL(req.URL)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("%w: limit is %d characters", ErrTitleTooLong, maxTitleLength)
	}

	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", fmt.Errorf("%w: limit is %d characters", ErrDescriptionTooLong, maxDescriptionLength)
	}

	link := model.NewLink(originalURL, userID)
	link.Title = title
	link.Description = description

	created, err := u.allocator.CreateLink(ctx, link)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", string(originalURL)),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return "", wrapError(err)
	}

	return u.buildShortURL(created.Code)
}

// normalizeURL очищает строку от пробелов и кавычек и проверяет, что это абсолютный URL
func normalizeURL(raw string) (model.URL, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, `"'`)

	if raw == "" {
		return "", ErrEmptyURL
	}

	if len(raw) > maxURLLength {
		return "", fmt.Errorf("%w: longer than %d bytes", ErrInvalidURL, maxURLLength)
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsedURL.Scheme == "" {
		return "", fmt.Errorf("%w: scheme is missing", ErrInvalidURL)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("%w: host is missing", ErrInvalidURL)
	}

	return model.URL(raw), nil
}

func (u *LinkUsecase) buildShortURL(code model.Code) (string, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(code))
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", string(code)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return shortURL, nil
}
