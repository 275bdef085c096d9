package usecase

import (
	"context"
	"errors"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/store"
	"go.uber.org/zap"
)

// GetOriginalURL засчитывает переход по короткому коду и возвращает оригинальный URL
func (u *LinkUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	originalURL, err := u.resolver.Resolve(ctx, model.Code(code))
	if err != nil {
		u.logResolveError("failed to resolve code", code, err)
		return "", wrapError(err)
	}

	return originalURL.String(), nil
}

// GetLinkInfo возвращает описание ссылки без учёта перехода
func (u *LinkUsecase) GetLinkInfo(ctx context.Context, code string) (model.LinkResponse, error) {
	link, err := u.resolver.Lookup(ctx, model.Code(code))
	if err != nil {
		u.logResolveError("failed to get link info", code, err)
		return model.LinkResponse{}, wrapError(err)
	}

	return u.toLinkResponse(link), nil
}

// logResolveError пишет промах как debug, а сбой хранилища как error
func (u *LinkUsecase) logResolveError(msg, code string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		u.logger.Debug(msg, zap.String("code", code), zap.Error(err))
		return
	}
	u.logger.Error(msg, zap.String("code", code), zap.Error(err))
}
