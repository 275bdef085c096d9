package store

import (
	"context"
	"os"
	"testing"

	"github.com/avc-dev/link-shortener/internal/config/db"
	"github.com/avc-dev/link-shortener/internal/migrations"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestDB подключается к PostgreSQL из TEST_DATABASE_DSN и очищает таблицу ссылок.
// Без переменной окружения интеграционные тесты пропускаются
func setupTestDB(t *testing.T) *DatabaseStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	database, err := db.NewConfig(dsn).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, migrations.NewMigrator(database.DB(), migrations.Postgres, zap.NewNop()).RunUp())

	_, err = database.Pool.Exec(context.Background(), "TRUNCATE links")
	require.NoError(t, err)

	return NewDatabaseStore(database.Pool)
}

func TestDatabaseStore_Contract(t *testing.T) {
	if os.Getenv("TEST_DATABASE_DSN") == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	runStoreContract(t, func(t *testing.T) linkStore {
		return setupTestDB(t)
	})
}
