package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/config/db"
	"github.com/avc-dev/link-shortener/internal/handler"
	"github.com/avc-dev/link-shortener/internal/migrations"
	"github.com/avc-dev/link-shortener/internal/repository"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/store"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	storage, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)

	allocator, err := service.NewCodeAllocator(repo, a.config)
	if err != nil {
		return fmt.Errorf("failed to initialize code allocator: %w", err)
	}
	resolver := service.NewResolver(repo)

	a.usecase = usecase.NewLinkUsecase(repo, allocator, resolver, a.config, a.logger)
	a.handler = handler.New(a.usecase, a.logger)
	a.authService = service.NewAuthService(a.config.JWTSecret)

	return nil
}

// initStorage выбирает хранилище: PostgreSQL, SQLite, Redis, файл, память
func (a *App) initStorage(ctx context.Context) (repository.Store, error) {
	cfg := a.config

	switch {
	case cfg.DatabaseDSN != "":
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.NewMigrator(database.DB(), migrations.Postgres, a.logger).RunUp(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		a.logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database.Pool), nil

	case cfg.SQLiteDSN != "":
		sqlDB, err := store.OpenSQLite(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		sqliteStore := store.NewSQLiteStore(sqlDB)
		a.storageCloser = sqliteStore

		if err := migrations.NewMigrator(sqlDB, migrations.SQLite, a.logger).RunUp(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		a.logger.Info("Using SQLite storage", zap.String("dsn", cfg.SQLiteDSN))
		return sqliteStore, nil

	case cfg.RedisAddress != "":
		client, err := store.NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword, 0)
		if err != nil {
			return nil, err
		}
		redisStore := store.NewRedisStore(client)
		a.storageCloser = redisStore

		a.logger.Info("Using Redis storage", zap.String("address", cfg.RedisAddress))
		return redisStore, nil

	case cfg.FileStoragePath != "":
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		a.storageCloser = fileStore

		a.logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	a.logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}
