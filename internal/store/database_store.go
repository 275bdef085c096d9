package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

const linkColumns = `code, original_url, user_id, title, description, visit_count, is_active, created_at, updated_at`

// DatabaseStore реализует хранилище ссылок в PostgreSQL.
// Уникальность кода обеспечивает уникальный индекс links_code_key,
// счётчик переходов увеличивается одним UPDATE
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

// Create вставляет ссылку, дубликат кода возвращает ErrCodeConflict
func (ds *DatabaseStore) Create(ctx context.Context, link model.Link) error {
	query := `
		INSERT INTO links (code, original_url, user_id, title, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ds.pool.Exec(ctx, query,
		string(link.Code), string(link.OriginalURL), link.UserID,
		link.Title, link.Description, link.Active, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
		}
		return unavailable("failed to insert link", err)
	}

	return nil
}

// Exists проверяет, занят ли код
func (ds *DatabaseStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM links WHERE code = $1)`

	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, unavailable("failed to check code existence", err)
	}

	return exists, nil
}

// Get возвращает ссылку по коду
func (ds *DatabaseStore) Get(ctx context.Context, code model.Code) (model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, unavailable("failed to read link", err)
	}

	return link, nil
}

// IncrementVisits атомарно увеличивает visit_count активной ссылки и возвращает её URL
func (ds *DatabaseStore) IncrementVisits(ctx context.Context, code model.Code) (model.URL, error) {
	var originalURL string

	query := `
		UPDATE links
		SET visit_count = visit_count + 1, updated_at = NOW()
		WHERE code = $1 AND is_active
		RETURNING original_url
	`

	err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return "", unavailable("failed to increment visit count", err)
	}

	return model.URL(originalURL), nil
}

// IsOwnedBy проверяет, что активная ссылка принадлежит пользователю
func (ds *DatabaseStore) IsOwnedBy(ctx context.Context, code model.Code, userID string) bool {
	var owned bool

	query := `SELECT EXISTS (SELECT 1 FROM links WHERE code = $1 AND user_id = $2 AND is_active)`

	if err := ds.pool.QueryRow(ctx, query, string(code), userID).Scan(&owned); err != nil {
		return false
	}

	return owned
}

// DeactivateBatch помечает ссылки пользователя неактивными одним запросом
func (ds *DatabaseStore) DeactivateBatch(ctx context.Context, codes []model.Code, userID string) error {
	if len(codes) == 0 {
		return nil
	}

	raw := make([]string, len(codes))
	for i, code := range codes {
		raw[i] = string(code)
	}

	query := `
		UPDATE links
		SET is_active = FALSE, updated_at = NOW()
		WHERE code = ANY($1) AND user_id = $2 AND is_active
	`

	if _, err := ds.pool.Exec(ctx, query, raw, userID); err != nil {
		return unavailable("failed to deactivate links", err)
	}

	return nil
}

// ListByUser возвращает ссылки пользователя
func (ds *DatabaseStore) ListByUser(ctx context.Context, userID string) ([]model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 ORDER BY created_at DESC, code`
	return ds.queryLinks(ctx, query, userID)
}

// ListActive возвращает все активные ссылки
func (ds *DatabaseStore) ListActive(ctx context.Context) ([]model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE is_active ORDER BY created_at DESC, code`
	return ds.queryLinks(ctx, query)
}

// Stats считает агрегаты на стороне базы
func (ds *DatabaseStore) Stats(ctx context.Context, userID string) (model.LinkStats, error) {
	var stats model.LinkStats

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COALESCE(SUM(visit_count), 0)
		FROM links
		WHERE $1 = '' OR user_id = $1
	`

	err := ds.pool.QueryRow(ctx, query, userID).Scan(&stats.TotalLinks, &stats.ActiveLinks, &stats.TotalVisits)
	if err != nil {
		return model.LinkStats{}, unavailable("failed to aggregate stats", err)
	}

	topQuery := `SELECT ` + linkColumns + ` FROM links
		WHERE $1 = '' OR user_id = $1
		ORDER BY visit_count DESC, created_at DESC
		LIMIT $2`

	stats.TopLinks, err = ds.queryLinks(ctx, topQuery, userID, model.TopLinksLimit)
	if err != nil {
		return model.LinkStats{}, err
	}

	return stats, nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	if err := ds.pool.Ping(ctx); err != nil {
		return unavailable("failed to ping database", err)
	}
	return nil
}

func (ds *DatabaseStore) queryLinks(ctx context.Context, query string, args ...any) ([]model.Link, error) {
	rows, err := ds.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable("failed to query links", err)
	}
	defer rows.Close()

	var links []model.Link
	for rows.Next() {
		link, err := scanLink(rows)
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

func scanLink(row pgx.Row) (model.Link, error) {
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

// unavailable помечает ошибку драйвера как недоступность хранилища
func unavailable(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, msg, err)
}
