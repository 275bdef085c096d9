package app

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newStartApp(t *testing.T, httpAddr, grpcAddr string) *App {
	t.Helper()

	cfg := config.NewDefaultConfig()
	require.NoError(t, cfg.ServerAddress.Set(httpAddr))
	cfg.GRPCAddress = grpcAddr

	app := &App{config: cfg, logger: zaptest.NewLogger(t)}
	require.NoError(t, app.initDependencies(t.Context()))
	t.Cleanup(app.Close)

	return app
}

// freeAddr возвращает адрес свободного порта на loopback
func freeAddr(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	return addr
}

func TestApp_Start_GRPCAddressBusy(t *testing.T) {
	// Arrange
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	httpAddr := freeAddr(t)
	app := newStartApp(t, httpAddr, busy.Addr().String())

	// Act
	err = app.start(t.Context())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen gRPC address")

	// HTTP адрес освобождён
	lis, err := net.Listen("tcp", httpAddr)
	require.NoError(t, err)
	require.NoError(t, lis.Close())
}

func TestApp_Start_StopsOnCancel(t *testing.T) {
	app := newStartApp(t, freeAddr(t), freeAddr(t))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- app.start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(testWait):
		t.Fatal("servers did not stop after cancel")
	}
}
