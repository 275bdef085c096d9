package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/config/db"
	"github.com/avc-dev/link-shortener/internal/handler"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config      *config.Config
	logger      *zap.Logger
	handler     *handler.Handler
	usecase     *usecase.LinkUsecase
	authService *service.AuthService

	// dbPool подключение к PostgreSQL, nil для остальных хранилищ
	dbPool db.Database
	// storageCloser закрывает хранилище, которому нужен Close (sqlite, redis, файл)
	storageCloser io.Closer
}

// New создает новый экземпляр приложения
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: logger,
	}

	if err := app.initDependencies(ctx); err != nil {
		app.Close()
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

// Run читает конфигурацию и запускает приложение до получения SIGINT/SIGTERM
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()
	defer app.Close()

	return app.start(ctx)
}

// Close дожидается фоновых деактиваций и освобождает хранилище
func (a *App) Close() {
	if a.usecase != nil {
		a.usecase.Wait()
	}

	if a.storageCloser != nil {
		if err := a.storageCloser.Close(); err != nil {
			a.logger.Warn("failed to close storage", zap.Error(err))
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("Database connection closed")
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl

	return zapCfg.Build()
}
