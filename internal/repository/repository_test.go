package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/avc-dev/link-shortener/internal/mocks"
	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateLink_KeepsConflict(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockStore(t)
	link := model.NewLink("https://example.com", "")
	link.Code = "abc123"
	mockStore.EXPECT().Create(mock.Anything, link).Return(store.ErrCodeConflict).Once()

	repo := New(mockStore)

	// Act
	err := repo.CreateLink(context.Background(), link)

	// Assert
	assert.ErrorIs(t, err, store.ErrCodeConflict)
	assert.Contains(t, err.Error(), "failed to create link")
}

func TestRepository_IncrementVisits(t *testing.T) {
	tests := []struct {
		name    string
		url     model.URL
		err     error
		wantErr error
	}{
		{name: "success", url: "https://example.com"},
		{name: "not found", err: store.ErrNotFound, wantErr: store.ErrNotFound},
		{name: "unavailable", err: store.ErrUnavailable, wantErr: store.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := mocks.NewMockStore(t)
			mockStore.EXPECT().IncrementVisits(mock.Anything, model.Code("abc123")).Return(tt.url, tt.err).Once()

			url, err := New(mockStore).IncrementVisits(context.Background(), "abc123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, url)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, url)
		})
	}
}

func TestRepository_Exists(t *testing.T) {
	mockStore := mocks.NewMockStore(t)
	mockStore.EXPECT().Exists(mock.Anything, model.Code("abc123")).Return(true, nil).Once()
	mockStore.EXPECT().Exists(mock.Anything, model.Code("broken")).Return(false, errors.New("timeout")).Once()

	repo := New(mockStore)

	exists, err := repo.Exists(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Exists(context.Background(), "broken")
	assert.ErrorContains(t, err, "failed to check code existence")
}

func TestRepository_Delegation(t *testing.T) {
	ctx := context.Background()
	links := []model.Link{{Code: "abc123"}}
	stats := model.LinkStats{TotalLinks: 1}

	mockStore := mocks.NewMockStore(t)
	mockStore.EXPECT().Get(mock.Anything, model.Code("abc123")).Return(links[0], nil).Once()
	mockStore.EXPECT().IsOwnedBy(mock.Anything, model.Code("abc123"), "u1").Return(true).Once()
	mockStore.EXPECT().DeactivateBatch(mock.Anything, []model.Code{"abc123"}, "u1").Return(nil).Once()
	mockStore.EXPECT().ListByUser(mock.Anything, "u1").Return(links, nil).Once()
	mockStore.EXPECT().ListActive(mock.Anything).Return(links, nil).Once()
	mockStore.EXPECT().Stats(mock.Anything, "u1").Return(stats, nil).Once()
	mockStore.EXPECT().Ping(mock.Anything).Return(nil).Once()

	repo := New(mockStore)

	link, err := repo.GetLinkByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.Code("abc123"), link.Code)

	assert.True(t, repo.IsOwnedBy(ctx, "abc123", "u1"))
	require.NoError(t, repo.DeactivateLinks(ctx, []model.Code{"abc123"}, "u1"))

	byUser, err := repo.GetLinksByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, links, byUser)

	active, err := repo.GetActiveLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, links, active)

	got, err := repo.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	assert.NoError(t, repo.Ping(ctx))
}

func TestRepository_WrapsListErrors(t *testing.T) {
	mockStore := mocks.NewMockStore(t)
	mockStore.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, store.ErrUnavailable).Once()
	mockStore.EXPECT().Stats(mock.Anything, "").Return(model.LinkStats{}, store.ErrUnavailable).Once()
	mockStore.EXPECT().DeactivateBatch(mock.Anything, mock.Anything, "u1").Return(store.ErrUnavailable).Once()

	repo := New(mockStore)

	_, err := repo.GetLinksByUserID(context.Background(), "u1")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	_, err = repo.GetStats(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	err = repo.DeactivateLinks(context.Background(), []model.Code{"abc123"}, "u1")
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
