package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) linkStore {
		fs, err := NewFileStore(filepath.Join(t.TempDir(), "links.json"))
		require.NoError(t, err)
		return fs
	})
}

func TestFileStore_NewFileStore_MissingFile(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	require.NoError(t, err)
	links, err := fs.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, links)
}

// TestFileStore_Replay состояние после перезапуска совпадает с состоянием до него
func TestFileStore_Replay(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "links.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)

	link := newTestLink("abc123", "https://example.com", "owner")
	link.Title = "Заголовок"
	require.NoError(t, first.Create(ctx, link))
	require.NoError(t, first.Create(ctx, newTestLink("off001", "https://off.example.com", "owner")))

	for i := 0; i < 4; i++ {
		_, err := first.IncrementVisits(ctx, "abc123")
		require.NoError(t, err)
	}
	require.NoError(t, first.DeactivateBatch(ctx, []model.Code{"off001"}, "owner"))

	// Act
	second, err := NewFileStore(path)
	require.NoError(t, err)

	// Assert
	got, err := second.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.VisitCount)
	assert.Equal(t, "Заголовок", got.Title)
	assert.True(t, got.Active)

	off, err := second.Get(ctx, "off001")
	require.NoError(t, err)
	assert.False(t, off.Active)

	err = second.Create(ctx, newTestLink("abc123", "https://other.example.com", ""))
	assert.ErrorIs(t, err, ErrCodeConflict)
}

// TestFileStore_ForeignDeactivateNotJournaled чужая деактивация не попадает в журнал
func TestFileStore_ForeignDeactivateNotJournaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	ctx := context.Background()

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Create(ctx, newTestLink("abc123", "https://example.com", "owner")))

	require.NoError(t, fs.DeactivateBatch(ctx, []model.Code{"abc123"}, "intruder"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
	assert.NotContains(t, string(data), model.OpDeactivate)
}

func TestFileStore_FailedLookupsNotJournaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	ctx := context.Background()

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = fs.IncrementVisits(ctx, "zzzzzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestFileStore_ReplayLongEntry запись длиннее буфера чтения восстанавливается после перезапуска
func TestFileStore_ReplayLongEntry(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "links.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)

	link := newTestLink("big001", "https://example.com", "owner")
	link.Description = strings.Repeat("описание ", 20000)
	require.NoError(t, first.Create(ctx, link))
	_, err = first.IncrementVisits(ctx, "big001")
	require.NoError(t, err)

	// Act
	second, err := NewFileStore(path)

	// Assert
	require.NoError(t, err)
	got, err := second.Get(ctx, "big001")
	require.NoError(t, err)
	assert.Equal(t, link.Description, got.Description)
	assert.Equal(t, int64(1), got.VisitCount)
}

func TestFileStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "broken json",
			content: "{not json}\n",
			errText: "failed to unmarshal line 1",
		},
		{
			name:    "unknown operation",
			content: `{"uuid":"1","op":"rename","short_url":"abc123","created_at":"2024-01-01T00:00:00Z"}` + "\n",
			errText: "unknown journal operation",
		},
		{
			name: "duplicate create",
			content: `{"uuid":"1","op":"create","short_url":"abc123","original_url":"https://a.example.com","created_at":"2024-01-01T00:00:00Z"}` + "\n" +
				`{"uuid":"2","op":"create","short_url":"abc123","original_url":"https://b.example.com","created_at":"2024-01-01T00:00:00Z"}` + "\n",
			errText: "corrupted journal entry 2",
		},
		{
			name:    "visit of unknown link",
			content: `{"uuid":"7","op":"visit","short_url":"abc123","created_at":"2024-01-01T00:00:00Z"}` + "\n",
			errText: "corrupted journal entry 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "links.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			fs, err := NewFileStore(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Equal(t, 1, strings.Count(err.Error(), "failed to load data from file"))
			assert.Nil(t, fs)
		})
	}
}

// TestFileStore_LegacyEntries записи без op и пустые строки читаются как создание ссылки
func TestFileStore_LegacyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	content := `{"uuid":"1","short_url":"abc123","original_url":"https://example.com","created_at":"2024-01-01T00:00:00Z"}` + "\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := fs.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), got.OriginalURL)
	assert.True(t, got.Active)
}

func TestFileStore_UnwritableJournal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// Путь указывает на каталог, запись в журнал невозможна
	fs, err := NewFileStore(dir)
	require.Error(t, err)
	assert.Nil(t, fs)

	fs = &FileStore{Store: NewStore(), fileStorage: NewFileStorage(dir)}

	err = fs.Create(ctx, newTestLink("abc123", "https://example.com", ""))
	assert.ErrorIs(t, err, ErrUnavailable)

	exists, err := fs.Exists(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, exists)
}
