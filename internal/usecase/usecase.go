package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/service"
	"go.uber.org/zap"
)

const (
	deleteWorkers = 4
	deleteTimeout = 30 * time.Second
)

//go:generate mockery --name LinkRepository

// LinkRepository определяет методы хранилища, которые нужны сценариям поверх аллокатора и резолвера
type LinkRepository interface {
	IsOwnedBy(ctx context.Context, code model.Code, userID string) bool
	DeactivateLinks(ctx context.Context, codes []model.Code, userID string) error
	GetLinksByUserID(ctx context.Context, userID string) ([]model.Link, error)
	GetActiveLinks(ctx context.Context) ([]model.Link, error)
	GetStats(ctx context.Context, userID string) (model.LinkStats, error)
	Ping(ctx context.Context) error
}

//go:generate mockery --name LinkAllocator

// LinkAllocator создаёт ссылки с уникальными кодами
type LinkAllocator interface {
	CreateLink(ctx context.Context, link model.Link) (model.Link, error)
	CreateLinks(ctx context.Context, urls []model.URL, userID string) ([]model.Link, error)
}

//go:generate mockery --name LinkResolver

// LinkResolver находит ссылку по коду
type LinkResolver interface {
	Resolve(ctx context.Context, code model.Code) (model.URL, error)
	Lookup(ctx context.Context, code model.Code) (model.Link, error)
}

// LinkUsecase содержит бизнес-логику работы с короткими ссылками
type LinkUsecase struct {
	repo           LinkRepository
	allocator      LinkAllocator
	resolver       LinkResolver
	asyncProcessor *service.AsyncProcessor
	cfg            *config.Config
	logger         *zap.Logger

	// pending фоновые деактивации, которые ещё выполняются
	pending sync.WaitGroup
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(
	repo LinkRepository,
	allocator LinkAllocator,
	resolver LinkResolver,
	cfg *config.Config,
	logger *zap.Logger,
) *LinkUsecase {
	return &LinkUsecase{
		repo:           repo,
		allocator:      allocator,
		resolver:       resolver,
		asyncProcessor: service.NewAsyncProcessor(deleteWorkers),
		cfg:            cfg,
		logger:         logger,
	}
}

// Wait блокируется до завершения фоновых деактиваций
func (u *LinkUsecase) Wait() {
	u.pending.Wait()
}

// Ping проверяет доступность хранилища
func (u *LinkUsecase) Ping(ctx context.Context) error {
	if err := u.repo.Ping(ctx); err != nil {
		u.logger.Error("storage ping failed", zap.Error(err))
		return wrapError(err)
	}
	return nil
}
