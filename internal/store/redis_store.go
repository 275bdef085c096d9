package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/redis/go-redis/v9"
)

const (
	redisLinkPrefix  = "link:"
	redisUserPrefix  = "user-links:"
	redisAllLinksKey = "links:all"
)

// createScript создаёт hash ссылки, только если ключа ещё нет.
// KEYS[1] ключ ссылки, KEYS[2] индекс всех ссылок, KEYS[3] индекс пользователя
var createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1],
	'code', ARGV[1], 'original_url', ARGV[2], 'user_id', ARGV[3],
	'title', ARGV[4], 'description', ARGV[5], 'visit_count', 0,
	'is_active', ARGV[6], 'created_at', ARGV[7], 'updated_at', ARGV[7])
redis.call('ZADD', KEYS[2], ARGV[8], ARGV[1])
redis.call('ZADD', KEYS[3], ARGV[8], ARGV[1])
return 1
`)

// incrementScript увеличивает счётчик только у существующей активной ссылки
var incrementScript = redis.NewScript(`
local active = redis.call('HGET', KEYS[1], 'is_active')
if active ~= '1' then
	return false
end
redis.call('HINCRBY', KEYS[1], 'visit_count', 1)
redis.call('HSET', KEYS[1], 'updated_at', ARGV[1])
return redis.call('HGET', KEYS[1], 'original_url')
`)

// deactivateScript снимает флаг активности, если ссылка принадлежит пользователю
var deactivateScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'user_id') ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'is_active', '0', 'updated_at', ARGV[2])
return 1
`)

// RedisStore хранилище ссылок в Redis: hash на ссылку и sorted set индексы по времени создания
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func linkKey(code model.Code) string {
	return redisLinkPrefix + string(code)
}

func userKey(userID string) string {
	return redisUserPrefix + userID
}

func (rs *RedisStore) Create(ctx context.Context, link model.Link) error {
	created, err := createScript.Run(ctx, rs.client,
		[]string{linkKey(link.Code), redisAllLinksKey, userKey(link.UserID)},
		string(link.Code), string(link.OriginalURL), link.UserID,
		link.Title, link.Description, boolFlag(link.Active),
		link.CreatedAt.Format(time.RFC3339Nano), link.CreatedAt.UnixMicro(),
	).Int()
	if err != nil {
		return unavailable("failed to create link", err)
	}

	if created == 0 {
		return fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
	}

	return nil
}

func (rs *RedisStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	n, err := rs.client.Exists(ctx, linkKey(code)).Result()
	if err != nil {
		return false, unavailable("failed to check code existence", err)
	}

	return n == 1, nil
}

func (rs *RedisStore) Get(ctx context.Context, code model.Code) (model.Link, error) {
	fields, err := rs.client.HGetAll(ctx, linkKey(code)).Result()
	if err != nil {
		return model.Link{}, unavailable("failed to read link", err)
	}
	if len(fields) == 0 {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return parseRedisLink(fields)
}

// IncrementVisits выполняет проверку активности и HINCRBY одним Lua скриптом
func (rs *RedisStore) IncrementVisits(ctx context.Context, code model.Code) (model.URL, error) {
	originalURL, err := incrementScript.Run(ctx, rs.client,
		[]string{linkKey(code)},
		time.Now().UTC().Format(time.RFC3339Nano),
	).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return "", unavailable("failed to increment visit count", err)
	}

	return model.URL(originalURL), nil
}

func (rs *RedisStore) IsOwnedBy(ctx context.Context, code model.Code, userID string) bool {
	values, err := rs.client.HMGet(ctx, linkKey(code), "user_id", "is_active").Result()
	if err != nil || len(values) != 2 {
		return false
	}

	owner, _ := values[0].(string)
	active, _ := values[1].(string)

	return owner == userID && active == "1"
}

func (rs *RedisStore) DeactivateBatch(ctx context.Context, codes []model.Code, userID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := rs.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, code := range codes {
			deactivateScript.Eval(ctx, pipe, []string{linkKey(code)}, userID, now)
		}
		return nil
	})
	if err != nil {
		return unavailable("failed to deactivate links", err)
	}

	return nil
}

func (rs *RedisStore) ListByUser(ctx context.Context, userID string) ([]model.Link, error) {
	return rs.listFromIndex(ctx, userKey(userID), func(model.Link) bool { return true })
}

func (rs *RedisStore) ListActive(ctx context.Context) ([]model.Link, error) {
	return rs.listFromIndex(ctx, redisAllLinksKey, func(l model.Link) bool { return l.Active })
}

// Stats собирает ссылки из индекса и агрегирует на стороне приложения
func (rs *RedisStore) Stats(ctx context.Context, userID string) (model.LinkStats, error) {
	index := redisAllLinksKey
	if userID != "" {
		index = userKey(userID)
	}

	links, err := rs.listFromIndex(ctx, index, func(model.Link) bool { return true })
	if err != nil {
		return model.LinkStats{}, err
	}

	return BuildStats(links), nil
}

func (rs *RedisStore) Ping(ctx context.Context) error {
	if err := rs.client.Ping(ctx).Err(); err != nil {
		return unavailable("failed to ping redis", err)
	}
	return nil
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// listFromIndex читает коды из sorted set (новые первыми) и загружает hash каждой ссылки в pipeline
func (rs *RedisStore) listFromIndex(ctx context.Context, index string, match func(model.Link) bool) ([]model.Link, error) {
	codes, err := rs.client.ZRevRange(ctx, index, 0, -1).Result()
	if err != nil {
		return nil, unavailable("failed to read index", err)
	}
	if len(codes) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(codes))
	_, err = rs.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, code := range codes {
			cmds[i] = pipe.HGetAll(ctx, linkKey(model.Code(code)))
		}
		return nil
	})
	if err != nil {
		return nil, unavailable("failed to load links", err)
	}

	links := make([]model.Link, 0, len(codes))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		link, err := parseRedisLink(fields)
		if err != nil {
			return nil, err
		}
		if match(link) {
			links = append(links, link)
		}
	}

	return links, nil
}

func parseRedisLink(fields map[string]string) (model.Link, error) {
	visits, err := strconv.ParseInt(fields["visit_count"], 10, 64)
	if err != nil {
		return model.Link{}, fmt.Errorf("invalid visit_count for %s: %w", fields["code"], err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return model.Link{}, fmt.Errorf("invalid created_at for %s: %w", fields["code"], err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return model.Link{}, fmt.Errorf("invalid updated_at for %s: %w", fields["code"], err)
	}

	return model.Link{
		Code:        model.Code(fields["code"]),
		OriginalURL: model.URL(fields["original_url"]),
		UserID:      fields["user_id"],
		Title:       fields["title"],
		Description: fields["description"],
		VisitCount:  visits,
		Active:      fields["is_active"] == "1",
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
