package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
)

//go:generate mockery --name Store

// Store контракт хранилища ссылок.
// Create обязан отклонять дубликат кода ошибкой store.ErrCodeConflict,
// IncrementVisits обязан увеличивать счётчик атомарно
type Store interface {
	Create(ctx context.Context, link model.Link) error
	Exists(ctx context.Context, code model.Code) (bool, error)
	Get(ctx context.Context, code model.Code) (model.Link, error)
	IncrementVisits(ctx context.Context, code model.Code) (model.URL, error)
	IsOwnedBy(ctx context.Context, code model.Code, userID string) bool
	DeactivateBatch(ctx context.Context, codes []model.Code, userID string) error
	ListByUser(ctx context.Context, userID string) ([]model.Link, error)
	ListActive(ctx context.Context) ([]model.Link, error)
	Stats(ctx context.Context, userID string) (model.LinkStats, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) IsOwnedBy(ctx context.Context, code model.Code, userID string) bool {
	return r.underlying.IsOwnedBy(ctx, code, userID)
}

func (r *Repository) DeactivateLinks(ctx context.Context, codes []model.Code, userID string) error {
	if err := r.underlying.DeactivateBatch(ctx, codes, userID); err != nil {
		return fmt.Errorf("failed to deactivate links: %w", err)
	}
	return nil
}

func (r *Repository) GetLinksByUserID(ctx context.Context, userID string) ([]model.Link, error) {
	links, err := r.underlying.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links by user ID: %w", err)
	}
	return links, nil
}

func (r *Repository) GetActiveLinks(ctx context.Context) ([]model.Link, error) {
	links, err := r.underlying.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active links: %w", err)
	}
	return links, nil
}

func (r *Repository) GetStats(ctx context.Context, userID string) (model.LinkStats, error) {
	stats, err := r.underlying.Stats(ctx, userID)
	if err != nil {
		return model.LinkStats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
