package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/avc-dev/link-shortener/internal/grpcserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// start запускает HTTP сервер и, если задан адрес, gRPC сервер.
// Оба адреса занимаются до запуска серверов.
// Возвращается после отмены ctx и корректной остановки обоих серверов
func (a *App) start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           newRouter(a.handler, a.authService, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	httpListener, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen HTTP address: %w", err)
	}

	var grpcListener net.Listener
	if a.config.GRPCAddress != "" {
		grpcListener, err = net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			if closeErr := httpListener.Close(); closeErr != nil {
				a.logger.Warn("Failed to close HTTP listener", zap.Error(closeErr))
			}
			return fmt.Errorf("failed to listen gRPC address: %w", err)
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting HTTP server", zap.String("address", httpListener.Addr().String()))
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		a.logger.Info("Shutting down HTTP server")
		return httpServer.Shutdown(shutdownCtx)
	})

	if grpcListener != nil {
		grpcServer := grpcserver.NewGRPCServer(grpcserver.New(a.usecase, a.authService, a.logger), a.logger)

		g.Go(func() error {
			a.logger.Info("Starting gRPC server", zap.String("address", grpcListener.Addr().String()))
			return grpcserver.Serve(grpcServer, grpcListener)
		})

		g.Go(func() error {
			<-gCtx.Done()
			a.logger.Info("Shutting down gRPC server")
			grpcServer.GracefulStop()
			return nil
		})
	}

	return g.Wait()
}
