package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/repository"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newMemoryUsecase собирает сценарии поверх настоящего in-memory хранилища
func newMemoryUsecase(t *testing.T) *LinkUsecase {
	t.Helper()

	cfg := config.NewDefaultConfig()
	repo := repository.New(store.NewStore())

	allocator, err := service.NewCodeAllocator(repo, cfg)
	require.NoError(t, err)

	return NewLinkUsecase(repo, allocator, service.NewResolver(repo), cfg, zaptest.NewLogger(t))
}

func codeFromShortURL(shortURL string) string {
	return shortURL[strings.LastIndex(shortURL, "/")+1:]
}

func TestLinkLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUsecase(t)

	shortURL, err := uc.CreateShortURLFromString(ctx, "https://example.com/page", "owner")
	require.NoError(t, err)
	code := codeFromShortURL(shortURL)

	for i := 0; i < 3; i++ {
		original, err := uc.GetOriginalURL(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/page", original)
	}

	info, err := uc.GetLinkInfo(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.VisitCount)

	// Чужой пользователь не может деактивировать ссылку
	require.NoError(t, uc.DeleteURLs([]string{code}, "intruder"))
	uc.Wait()
	_, err = uc.GetOriginalURL(ctx, code)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteURLs([]string{code}, "owner"))
	uc.Wait()

	_, err = uc.GetOriginalURL(ctx, code)
	assert.ErrorIs(t, err, ErrURLNotFound)

	_, err = uc.GetLinkInfo(ctx, code)
	assert.ErrorIs(t, err, ErrURLNotFound)

	links, err := uc.GetURLsByUserID(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.False(t, links[0].IsActive)
	assert.Equal(t, int64(4), links[0].VisitCount)

	public, err := uc.GetPublicURLs(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestConcurrentCreateAndResolve(t *testing.T) {
	const n = 100

	ctx := context.Background()
	uc := newMemoryUsecase(t)

	shortURLs := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			shortURL, err := uc.CreateShortURLFromString(ctx, fmt.Sprintf("https://example.com/%d", i), "")
			assert.NoError(t, err)
			shortURLs[i] = shortURL
		}(i)
	}
	wg.Wait()

	unique := make(map[string]struct{}, n)
	for _, shortURL := range shortURLs {
		unique[shortURL] = struct{}{}
	}
	assert.Len(t, unique, n)

	code := codeFromShortURL(shortURLs[0])
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.GetOriginalURL(ctx, code)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	info, err := uc.GetLinkInfo(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, int64(n), info.VisitCount)

	stats, err := uc.GetStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, n, stats.TotalLinks)
	assert.Equal(t, int64(n), stats.TotalVisits)
	require.NotEmpty(t, stats.TopLinks)
	assert.Equal(t, code, stats.TopLinks[0].ShortCode)
}
