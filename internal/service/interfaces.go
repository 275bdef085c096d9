package service

import (
	"context"

	"github.com/avc-dev/link-shortener/internal/model"
)

//go:generate mockery --name LinkRepository --structname MockCodeRepository

// LinkRepository определяет методы хранилища, нужные генерации кодов и резолверу
type LinkRepository interface {
	// Exists проверяет, занят ли код. Проверка только экономит лишние записи,
	// уникальность гарантирует CreateLink
	Exists(ctx context.Context, code model.Code) (bool, error)
	// CreateLink сохраняет ссылку, для занятого кода возвращает store.ErrCodeConflict
	CreateLink(ctx context.Context, link model.Link) error
	GetLinkByCode(ctx context.Context, code model.Code) (model.Link, error)
	// IncrementVisits атомарно засчитывает переход по активной ссылке
	IncrementVisits(ctx context.Context, code model.Code) (model.URL, error)
}

//go:generate mockery --name Generator

// Generator выдаёт случайный код-кандидат
type Generator interface {
	GenerateCode() model.Code
}
