package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/avc-dev/link-shortener/internal/model"
)

// FileStorage управляет журналом операций в файле, по одной JSON записи на строку
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла. Длина строки не ограничена
func (fs *FileStorage) Load() ([]model.LinkEntry, error) {
	file, err := os.Open(fs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return []model.LinkEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	entries := []model.LinkEntry{}
	reader := bufio.NewReader(file)
	line := 0
	for {
		line++
		data, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read file: %w", readErr)
		}

		data = bytes.TrimSpace(data)
		if len(data) > 0 {
			var entry model.LinkEntry
			if err := json.Unmarshal(data, &entry); err != nil {
				return nil, fmt.Errorf("failed to unmarshal line %d: %w", line, err)
			}
			entries = append(entries, entry)
		}

		if errors.Is(readErr, io.EOF) {
			return entries, nil
		}
	}
}

// Append дописывает запись в конец файла
func (fs *FileStorage) Append(entry model.LinkEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	file, err := os.OpenFile(fs.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if _, err := file.Write(append(data, '\n')); err != nil {
		file.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
