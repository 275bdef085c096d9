package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/store"
)

// Resolver находит ссылку по коду и засчитывает переход
type Resolver struct {
	repo LinkRepository
}

func NewResolver(repo LinkRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve увеличивает счётчик переходов ровно на единицу и возвращает оригинальный URL.
// Неизвестный или неактивный код даёт store.ErrNotFound без изменений в хранилище
func (r *Resolver) Resolve(ctx context.Context, code model.Code) (model.URL, error) {
	return r.repo.IncrementVisits(ctx, code)
}

// Lookup возвращает ссылку без учёта перехода. Неактивная ссылка даёт store.ErrNotFound, как и в Resolve
func (r *Resolver) Lookup(ctx context.Context, code model.Code) (model.Link, error) {
	link, err := r.repo.GetLinkByCode(ctx, code)
	if err != nil {
		return model.Link{}, err
	}

	if !link.Active {
		return model.Link{}, fmt.Errorf("code %s is inactive: %w", code, store.ErrNotFound)
	}

	return link, nil
}
