package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через журнал в файле.
// Каждая мутация сначала пишется в журнал и только потом применяется в памяти,
// поэтому ошибка записи не оставляет частично применённых изменений
type FileStore struct {
	*Store
	fileStorage *FileStorage
	// writeMu сериализует пары «проверка + запись в журнал + применение»
	writeMu sync.Mutex
}

// NewFileStore создаёт FileStore и восстанавливает состояние из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		Store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// Create записывает ссылку в журнал и в память
func (fs *FileStore) Create(ctx context.Context, link model.Link) error {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	exists, err := fs.Store.Exists(ctx, link.Code)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("code %s: %w", link.Code, ErrCodeConflict)
	}

	entry := model.LinkEntry{
		UUID:        uuid.New().String(),
		Op:          model.OpCreate,
		ShortURL:    string(link.Code),
		OriginalURL: string(link.OriginalURL),
		UserID:      link.UserID,
		Title:       link.Title,
		Description: link.Description,
		CreatedAt:   link.CreatedAt,
	}
	if err := fs.fileStorage.Append(entry); err != nil {
		return fmt.Errorf("%w: failed to append to file: %w", ErrUnavailable, err)
	}

	return fs.Store.Create(ctx, link)
}

// IncrementVisits фиксирует переход в журнале и увеличивает счётчик в памяти
func (fs *FileStore) IncrementVisits(ctx context.Context, code model.Code) (model.URL, error) {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	link, err := fs.Store.Get(ctx, code)
	if err != nil {
		return "", err
	}
	if !link.Active {
		return "", fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	entry := model.LinkEntry{
		UUID:      uuid.New().String(),
		Op:        model.OpVisit,
		ShortURL:  string(code),
		CreatedAt: time.Now().UTC(),
	}
	if err := fs.fileStorage.Append(entry); err != nil {
		return "", fmt.Errorf("%w: failed to append to file: %w", ErrUnavailable, err)
	}

	return fs.Store.IncrementVisits(ctx, code)
}

// DeactivateBatch журналирует деактивацию только тех ссылок, которыми владеет пользователь
func (fs *FileStore) DeactivateBatch(ctx context.Context, codes []model.Code, userID string) error {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	now := time.Now().UTC()
	owned := make([]model.Code, 0, len(codes))
	for _, code := range codes {
		if !fs.Store.IsOwnedBy(ctx, code, userID) {
			continue
		}

		entry := model.LinkEntry{
			UUID:      uuid.New().String(),
			Op:        model.OpDeactivate,
			ShortURL:  string(code),
			UserID:    userID,
			CreatedAt: now,
		}
		if err := fs.fileStorage.Append(entry); err != nil {
			// Уже записанные в журнал деактивации применяем, чтобы память совпадала с файлом
			_ = fs.Store.DeactivateBatch(ctx, owned, userID)
			return fmt.Errorf("%w: failed to append to file: %w", ErrUnavailable, err)
		}
		owned = append(owned, code)
	}

	return fs.Store.DeactivateBatch(ctx, owned, userID)
}

// loadFromFile проигрывает журнал в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	fs.Store.mutex.Lock()
	defer fs.Store.mutex.Unlock()

	for _, entry := range entries {
		code := model.Code(entry.ShortURL)

		switch entry.Op {
		case model.OpCreate, "":
			link := model.Link{
				Code:        code,
				OriginalURL: model.URL(entry.OriginalURL),
				UserID:      entry.UserID,
				Title:       entry.Title,
				Description: entry.Description,
				Active:      true,
				CreatedAt:   entry.CreatedAt,
				UpdatedAt:   entry.CreatedAt,
			}
			if err := fs.Store.createLocked(link); err != nil {
				return fmt.Errorf("corrupted journal entry %s: %w", entry.UUID, err)
			}
		case model.OpVisit:
			// В журнал попадают переходы только по активным ссылкам
			if _, err := fs.Store.incrementLocked(code); err != nil {
				return fmt.Errorf("corrupted journal entry %s: %w", entry.UUID, err)
			}
			fs.Store.links[code].UpdatedAt = entry.CreatedAt
		case model.OpDeactivate:
			fs.Store.deactivateLocked([]model.Code{code}, entry.UserID, entry.CreatedAt)
		default:
			return fmt.Errorf("unknown journal operation %q", entry.Op)
		}
	}

	return nil
}
