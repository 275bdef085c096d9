package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkStore общий контракт всех хранилищ
type linkStore interface {
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

func newTestLink(code model.Code, url model.URL, userID string) model.Link {
	link := model.NewLink(url, userID)
	link.Code = code
	// Секундная точность, чтобы время одинаково переживало все бэкенды
	link.CreatedAt = link.CreatedAt.Truncate(time.Second)
	link.UpdatedAt = link.CreatedAt
	return link
}

// runStoreContract прогоняет одинаковые проверки для любого бэкенда.
// newStore должен возвращать пустое хранилище
func runStoreContract(t *testing.T, newStore func(t *testing.T) linkStore) {
	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		link := newTestLink("abc123", "https://example.com/путь?q=1", "user-1")
		link.Title = "Example"
		link.Description = "Описание"
		require.NoError(t, s.Create(ctx, link))

		got, err := s.Get(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, link.Code, got.Code)
		assert.Equal(t, link.OriginalURL, got.OriginalURL)
		assert.Equal(t, "user-1", got.UserID)
		assert.Equal(t, "Example", got.Title)
		assert.Equal(t, "Описание", got.Description)
		assert.True(t, got.Active)
		assert.Zero(t, got.VisitCount)
		assert.WithinDuration(t, link.CreatedAt, got.CreatedAt, time.Second)

		exists, err := s.Exists(ctx, "abc123")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.Exists(ctx, "nope00")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Create(ctx, newTestLink("dup001", "https://first.example.com", "")))

		err := s.Create(ctx, newTestLink("dup001", "https://second.example.com", ""))
		assert.ErrorIs(t, err, ErrCodeConflict)

		got, err := s.Get(ctx, "dup001")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://first.example.com"), got.OriginalURL)
	})

	t.Run("get unknown code", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Get(context.Background(), "zzzzzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("increment visits", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, newTestLink("vis001", "https://example.com", "")))

		for i := 0; i < 3; i++ {
			url, err := s.IncrementVisits(ctx, "vis001")
			require.NoError(t, err)
			assert.Equal(t, model.URL("https://example.com"), url)
		}

		got, err := s.Get(ctx, "vis001")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.VisitCount)

		_, err = s.IncrementVisits(ctx, "zzzzzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		const n = 50

		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, newTestLink("hot001", "https://example.com", "")))

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.IncrementVisits(ctx, "hot001")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := s.Get(ctx, "hot001")
		require.NoError(t, err)
		assert.Equal(t, int64(n), got.VisitCount)
	})

	t.Run("concurrent creates of one code", func(t *testing.T) {
		const n = 20

		s := newStore(t)
		ctx := context.Background()

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			ok        int
			conflicts int
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := s.Create(ctx, newTestLink("race01", model.URL(fmt.Sprintf("https://example.com/%d", i)), ""))

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case assert.ErrorIs(t, err, ErrCodeConflict):
					conflicts++
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, ok)
		assert.Equal(t, n-1, conflicts)
	})

	t.Run("deactivate only own links", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, newTestLink("own001", "https://a.example.com", "owner")))
		require.NoError(t, s.Create(ctx, newTestLink("own002", "https://b.example.com", "owner")))
		require.NoError(t, s.Create(ctx, newTestLink("oth001", "https://c.example.com", "other")))

		assert.True(t, s.IsOwnedBy(ctx, "own001", "owner"))
		assert.False(t, s.IsOwnedBy(ctx, "oth001", "owner"))
		assert.False(t, s.IsOwnedBy(ctx, "zzzzzz", "owner"))

		require.NoError(t, s.DeactivateBatch(ctx, []model.Code{"own001", "oth001", "zzzzzz"}, "owner"))

		own, err := s.Get(ctx, "own001")
		require.NoError(t, err)
		assert.False(t, own.Active)

		other, err := s.Get(ctx, "oth001")
		require.NoError(t, err)
		assert.True(t, other.Active)

		assert.False(t, s.IsOwnedBy(ctx, "own001", "owner"))

		_, err = s.IncrementVisits(ctx, "own001")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, s.DeactivateBatch(ctx, nil, "owner"))
	})

	t.Run("lists", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, newTestLink("lst001", "https://a.example.com", "u1")))
		require.NoError(t, s.Create(ctx, newTestLink("lst002", "https://b.example.com", "u1")))
		require.NoError(t, s.Create(ctx, newTestLink("lst003", "https://c.example.com", "u2")))
		require.NoError(t, s.DeactivateBatch(ctx, []model.Code{"lst002"}, "u1"))

		byUser, err := s.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.Code{"lst001", "lst002"}, codesOf(byUser))

		active, err := s.ListActive(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.Code{"lst001", "lst003"}, codesOf(active))

		none, err := s.ListByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("stats", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, newTestLink("sta001", "https://a.example.com", "u1")))
		require.NoError(t, s.Create(ctx, newTestLink("sta002", "https://b.example.com", "u1")))
		require.NoError(t, s.Create(ctx, newTestLink("sta003", "https://c.example.com", "u2")))

		for i := 0; i < 3; i++ {
			_, err := s.IncrementVisits(ctx, "sta002")
			require.NoError(t, err)
		}
		_, err := s.IncrementVisits(ctx, "sta003")
		require.NoError(t, err)
		require.NoError(t, s.DeactivateBatch(ctx, []model.Code{"sta001"}, "u1"))

		all, err := s.Stats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 3, all.TotalLinks)
		assert.Equal(t, 2, all.ActiveLinks)
		assert.Equal(t, int64(4), all.TotalVisits)
		require.NotEmpty(t, all.TopLinks)
		assert.Equal(t, model.Code("sta002"), all.TopLinks[0].Code)

		user, err := s.Stats(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, user.TotalLinks)
		assert.Equal(t, 1, user.ActiveLinks)
		assert.Equal(t, int64(3), user.TotalVisits)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Ping(context.Background()))
	})
}

func codesOf(links []model.Link) []model.Code {
	codes := make([]model.Code, 0, len(links))
	for _, link := range links {
		codes = append(codes, link.Code)
	}
	return codes
}
