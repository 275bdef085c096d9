package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/store"
)

// CodeAllocator выдаёт уникальные короткие коды и создаёт ссылки с ними.
// Проверка Exists только отсекает заведомо занятые кандидаты; гарантию уникальности
// даёт ограничение хранилища при записи, и конфликт записи приводит к новой попытке
type CodeAllocator struct {
	repo          LinkRepository
	codeGenerator Generator
	maxAttempts   int
}

// NewCodeAllocator создает аллокатор с генератором из конфигурации
func NewCodeAllocator(repo LinkRepository, cfg *config.Config) (*CodeAllocator, error) {
	generator, err := NewCodeGenerator(cfg.Code.Length, cfg.Code.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to create code generator: %w", err)
	}

	return &CodeAllocator{
		repo:          repo,
		codeGenerator: generator,
		maxAttempts:   cfg.Retry.MaxAttempts,
	}, nil
}

// Allocate возвращает код, отсутствующий в хранилище на момент проверки
func (a *CodeAllocator) Allocate(ctx context.Context) (model.Code, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		code, free, err := a.nextCandidate(ctx)
		if err != nil {
			return "", err
		}
		if free {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to allocate code after %d attempts: %w", a.maxAttempts, ErrCapacityExhausted)
}

// CreateLink назначает ссылке свободный код и сохраняет её.
// Отказ хранилища из-за занятого кода поглощается: кандидат отбрасывается
// и генерация начинается заново. Проверки и конфликты записи расходуют общий бюджет попыток
func (a *CodeAllocator) CreateLink(ctx context.Context, link model.Link) (model.Link, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		code, free, err := a.nextCandidate(ctx)
		if err != nil {
			return model.Link{}, err
		}
		if !free {
			continue
		}

		link.Code = code
		err = a.repo.CreateLink(ctx, link)
		if err == nil {
			return link, nil
		}
		if errors.Is(err, store.ErrCodeConflict) {
			continue
		}

		return model.Link{}, err
	}

	return model.Link{}, fmt.Errorf("failed to create link after %d attempts: %w", a.maxAttempts, ErrCapacityExhausted)
}

// CreateLinks создаёт ссылки для каждого URL, возвращая их в порядке входа
func (a *CodeAllocator) CreateLinks(ctx context.Context, urls []model.URL, userID string) ([]model.Link, error) {
	links := make([]model.Link, 0, len(urls))

	for i, url := range urls {
		link, err := a.CreateLink(ctx, model.NewLink(url, userID))
		if err != nil {
			return nil, fmt.Errorf("failed to create link at index %d: %w", i, err)
		}
		links = append(links, link)
	}

	return links, nil
}

// nextCandidate генерирует кандидата и проверяет, свободен ли он
func (a *CodeAllocator) nextCandidate(ctx context.Context) (model.Code, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	code := a.codeGenerator.GenerateCode()

	exists, err := a.repo.Exists(ctx, code)
	if err != nil {
		return "", false, err
	}

	return code, !exists, nil
}
