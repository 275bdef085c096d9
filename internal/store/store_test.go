package store

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) linkStore {
		return NewStore()
	})
}

// TestStore_GetReturnsCopy изменение полученной ссылки не затрагивает хранилище
func TestStore_GetReturnsCopy(t *testing.T) {
	// Arrange
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newTestLink("abc123", "https://example.com", "")))

	// Act
	got, err := s.Get(ctx, "abc123")
	require.NoError(t, err)
	got.OriginalURL = "https://evil.example.com"
	got.VisitCount = 100

	// Assert
	again, err := s.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), again.OriginalURL)
	assert.Zero(t, again.VisitCount)
}

func TestStore_ListOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, code := range []model.Code{"old001", "mid001", "new001"} {
		link := newTestLink(code, "https://example.com", "u1")
		link.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.Create(ctx, link))
	}

	links, err := s.ListByUser(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, []model.Code{"new001", "mid001", "old001"}, codesOf(links))
}

func TestBuildStats(t *testing.T) {
	tests := []struct {
		name        string
		visits      []int64
		wantTop     int
		wantVisits  int64
		wantFirstIx int
	}{
		{name: "empty", wantTop: 0},
		{name: "fewer than limit", visits: []int64{1, 5, 2}, wantTop: 3, wantVisits: 8, wantFirstIx: 1},
		{name: "more than limit", visits: []int64{0, 1, 2, 3, 4, 5, 6}, wantTop: model.TopLinksLimit, wantVisits: 21, wantFirstIx: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := make([]model.Link, len(tt.visits))
			for i, v := range tt.visits {
				links[i] = model.Link{Code: model.Code(rune('a' + i)), VisitCount: v, Active: true}
			}

			stats := BuildStats(links)

			assert.Equal(t, len(tt.visits), stats.TotalLinks)
			assert.Equal(t, len(tt.visits), stats.ActiveLinks)
			assert.Equal(t, tt.wantVisits, stats.TotalVisits)
			assert.Len(t, stats.TopLinks, tt.wantTop)
			if tt.wantTop > 0 {
				assert.Equal(t, links[tt.wantFirstIx].Code, stats.TopLinks[0].Code)
			}
		})
	}
}
