package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
)

func (r *Repository) GetLinkByCode(ctx context.Context, code model.Code) (model.Link, error) {
	link, err := r.underlying.Get(ctx, code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link by code: %w", err)
	}

	return link, nil
}

// IncrementVisits засчитывает переход и возвращает оригинальный URL
func (r *Repository) IncrementVisits(ctx context.Context, code model.Code) (model.URL, error) {
	url, err := r.underlying.IncrementVisits(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to increment visits: %w", err)
	}

	return url, nil
}
