package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/store"
)

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrEmptyURL           = errors.New("empty URL")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
	ErrCapacityExhausted  = errors.New("no free short code available")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
)

// wrapError переводит ошибки нижних слоёв в ошибки сценариев, сохраняя причину
func wrapError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrURLNotFound, err)
	case errors.Is(err, service.ErrCapacityExhausted):
		return fmt.Errorf("%w: %w", ErrCapacityExhausted, err)
	default:
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}
