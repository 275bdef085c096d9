package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
)

// Exists проверяет существование кода в хранилище.
// Возвращает ошибку только в случае проблем с хранилищем
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}
