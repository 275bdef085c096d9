package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
)

// CreateLink сохраняет ссылку; занятый код отдаётся как store.ErrCodeConflict
func (r *Repository) CreateLink(ctx context.Context, link model.Link) error {
	if err := r.underlying.Create(ctx, link); err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}
