package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso / libsql драйвер
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteStore хранилище ссылок в SQLite (локальный файл) или libsql (Turso)
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite открывает базу, драйвер выбирается по DSN
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	driverName := "sqlite"
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") || strings.HasPrefix(dsn, "https://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}

	if driverName == "sqlite" {
		// Один писатель: SQLite сериализует запись, так не ловим SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	return db, nil
}

// NewSQLiteStore создает SQLiteStore поверх открытой базы с применёнными миграциями
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create вставляет ссылку, нарушение уникального индекса возвращает ErrCodeConflict
func (s *SQLiteStore) Create(ctx context.Context, link model.Link) error {
	query := `
		INSERT INTO links (code, original_url, user_id, title, description, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		string(link.Code), string(link.OriginalURL), link.UserID,
		link.Title, link.Description, link.Active, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
		}
		return unavailable("failed to insert link", err)
	}

	return nil
}

func (s *SQLiteStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM links WHERE code = ?)`, string(code)).Scan(&exists)
	if err != nil {
		return false, unavailable("failed to check code existence", err)
	}

	return exists, nil
}

func (s *SQLiteStore) Get(ctx context.Context, code model.Code) (model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE code = ?`

	link, err := scanSQLLink(s.db.QueryRowContext(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, unavailable("failed to read link", err)
	}

	return link, nil
}

// IncrementVisits увеличивает счётчик одним оператором UPDATE ... RETURNING
func (s *SQLiteStore) IncrementVisits(ctx context.Context, code model.Code) (model.URL, error) {
	var originalURL string

	query := `
		UPDATE links
		SET visit_count = visit_count + 1, updated_at = ?
		WHERE code = ? AND is_active = 1
		RETURNING original_url
	`

	err := s.db.QueryRowContext(ctx, query, time.Now().UTC(), string(code)).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return "", unavailable("failed to increment visit count", err)
	}

	return model.URL(originalURL), nil
}

func (s *SQLiteStore) IsOwnedBy(ctx context.Context, code model.Code, userID string) bool {
	var owned bool

	query := `SELECT EXISTS (SELECT 1 FROM links WHERE code = ? AND user_id = ? AND is_active = 1)`

	if err := s.db.QueryRowContext(ctx, query, string(code), userID).Scan(&owned); err != nil {
		return false
	}

	return owned
}

// DeactivateBatch деактивирует ссылки пользователя в одной транзакции
func (s *SQLiteStore) DeactivateBatch(ctx context.Context, codes []model.Code, userID string) error {
	if len(codes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("failed to begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE links SET is_active = 0, updated_at = ?
		WHERE code = ? AND user_id = ? AND is_active = 1
	`)
	if err != nil {
		return unavailable("failed to prepare statement", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, code := range codes {
		if _, err := stmt.ExecContext(ctx, now, string(code), userID); err != nil {
			return unavailable("failed to deactivate link", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("failed to commit transaction", err)
	}

	return nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID string) ([]model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = ? ORDER BY created_at DESC, code`
	return s.queryLinks(ctx, query, userID)
}

func (s *SQLiteStore) ListActive(ctx context.Context) ([]model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE is_active = 1 ORDER BY created_at DESC, code`
	return s.queryLinks(ctx, query)
}

func (s *SQLiteStore) Stats(ctx context.Context, userID string) (model.LinkStats, error) {
	var stats model.LinkStats

	query := `
		SELECT COUNT(*), COALESCE(SUM(is_active), 0), COALESCE(SUM(visit_count), 0)
		FROM links
		WHERE ? = '' OR user_id = ?
	`

	err := s.db.QueryRowContext(ctx, query, userID, userID).Scan(&stats.TotalLinks, &stats.ActiveLinks, &stats.TotalVisits)
	if err != nil {
		return model.LinkStats{}, unavailable("failed to aggregate stats", err)
	}

	topQuery := `SELECT ` + linkColumns + ` FROM links
		WHERE ? = '' OR user_id = ?
		ORDER BY visit_count DESC, created_at DESC
		LIMIT ?`

	stats.TopLinks, err = s.queryLinks(ctx, topQuery, userID, userID, model.TopLinksLimit)
	if err != nil {
		return model.LinkStats{}, err
	}

	return stats, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("failed to ping database", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) queryLinks(ctx context.Context, query string, args ...any) ([]model.Link, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("failed to query links", err)
	}
	defer rows.Close()

	var links []model.Link
	for rows.Next() {
		link, err := scanSQLLink(rows)
		if err != nil {
			return nil, unavailable("failed to scan link", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("failed to iterate links", err)
	}

	return links, nil
}

type sqlRow interface {
	Scan(dest ...any) error
}

func scanSQLLink(row sqlRow) (model.Link, error) {
	var (
		link        model.Link
		code        string
		originalURL string
	)

	err := row.Scan(&code, &originalURL, &link.UserID, &link.Title, &link.Description,
		&link.VisitCount, &link.Active, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return model.Link{}, err
	}

	link.Code = model.Code(code)
	link.OriginalURL = model.URL(originalURL)

	return link, nil
}

// isUniqueViolation распознаёт нарушение уникальности и у modernc, и у libsql
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
