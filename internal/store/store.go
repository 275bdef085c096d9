package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
)

var (
	ErrNotFound = errors.New("link not found")
	// ErrCodeConflict возвращается при попытке записать уже занятый код.
	// Наружу из сервиса генерации не выходит, служит сигналом для повторной попытки
	ErrCodeConflict = errors.New("code already exists")
	ErrUnavailable  = errors.New("storage unavailable")
)

// LinkMap представляет маппинг коротких кодов на ссылки
type LinkMap = map[model.Code]*model.Link

// Store in-memory хранилище ссылок
type Store struct {
	links LinkMap
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		links: make(LinkMap),
	}
}

// Create сохраняет новую ссылку, код должен быть свободен
func (s *Store) Create(_ context.Context, link model.Link) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.createLocked(link)
}

func (s *Store) createLocked(link model.Link) error {
	if _, exists := s.links[link.Code]; exists {
		return fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
	}

	stored := link
	s.links[link.Code] = &stored

	return nil
}

// Exists проверяет, занят ли код
func (s *Store) Exists(_ context.Context, code model.Code) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.links[code]
	return exists, nil
}

// Get возвращает ссылку по коду вне зависимости от её активности
func (s *Store) Get(_ context.Context, code model.Code) (model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[code]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return *link, nil
}

// IncrementVisits увеличивает счётчик переходов активной ссылки на единицу
// и возвращает оригинальный URL
func (s *Store) IncrementVisits(_ context.Context, code model.Code) (model.URL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.incrementLocked(code)
}

func (s *Store) incrementLocked(code model.Code) (model.URL, error) {
	link, ok := s.links[code]
	if !ok || !link.Active {
		return "", fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	link.VisitCount++
	link.UpdatedAt = time.Now().UTC()

	return link.OriginalURL, nil
}

// IsOwnedBy проверяет, что активная ссылка принадлежит пользователю
func (s *Store) IsOwnedBy(_ context.Context, code model.Code, userID string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[code]
	return ok && link.Active && link.UserID == userID
}

// DeactivateBatch помечает ссылки пользователя неактивными
func (s *Store) DeactivateBatch(_ context.Context, codes []model.Code, userID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.deactivateLocked(codes, userID, time.Now().UTC())
	return nil
}

func (s *Store) deactivateLocked(codes []model.Code, userID string, at time.Time) {
	for _, code := range codes {
		link, ok := s.links[code]
		if !ok || link.UserID != userID {
			continue
		}
		link.Active = false
		link.UpdatedAt = at
	}
}

// ListByUser возвращает все ссылки пользователя, новые первыми
func (s *Store) ListByUser(_ context.Context, userID string) ([]model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.collect(func(l *model.Link) bool { return l.UserID == userID }), nil
}

// ListActive возвращает все активные ссылки
func (s *Store) ListActive(_ context.Context) ([]model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.collect(func(l *model.Link) bool { return l.Active }), nil
}

func (s *Store) collect(match func(*model.Link) bool) []model.Link {
	var links []model.Link
	for _, link := range s.links {
		if match(link) {
			links = append(links, *link)
		}
	}

	slices.SortFunc(links, func(a, b model.Link) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})

	return links
}

// Stats считает статистику по ссылкам пользователя или по всем, если userID пуст
func (s *Store) Stats(_ context.Context, userID string) (model.LinkStats, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	links := s.collect(func(l *model.Link) bool { return userID == "" || l.UserID == userID })
	return BuildStats(links), nil
}

// Ping всегда успешен для памяти
func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

// BuildStats агрегирует статистику по списку ссылок
func BuildStats(links []model.Link) model.LinkStats {
	var stats model.LinkStats
	for _, link := range links {
		stats.TotalLinks++
		if link.Active {
			stats.ActiveLinks++
		}
		stats.TotalVisits += link.VisitCount
	}

	top := slices.Clone(links)
	slices.SortStableFunc(top, func(a, b model.Link) int {
		return cmp.Compare(b.VisitCount, a.VisitCount)
	})
	if len(top) > model.TopLinksLimit {
		top = top[:model.TopLinksLimit]
	}
	stats.TopLinks = top

	return stats
}
