package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkUsecase

// LinkUsecase определяет сценарии, которые вызывают HTTP обработчики
type LinkUsecase interface {
	CreateShortURLFromString(ctx context.Context, urlString string, userID string) (string, error)
	CreateShortURL(ctx context.Context, req model.ShortenRequest, userID string) (string, error)
	CreateShortURLsBatch(ctx context.Context, urlStrings []string, userID string) ([]string, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetLinkInfo(ctx context.Context, code string) (model.LinkResponse, error)
	GetURLsByUserID(ctx context.Context, userID string) ([]model.LinkResponse, error)
	GetPublicURLs(ctx context.Context) ([]model.LinkResponse, error)
	DeleteURLs(codes []string, userID string) error
	GetStats(ctx context.Context, userID string) (model.StatsResponse, error)
	Ping(ctx context.Context) error
}

// Handler HTTP обработчики сервиса коротких ссылок
type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
}

// New создает новый экземпляр Handler
func New(usecase LinkUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// getUserIDFromRequest извлекает user_id, положенный в контекст миддлваром аутентификации
func (h *Handler) getUserIDFromRequest(req *http.Request) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(req.Context())
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// handleError переводит ошибку сценария в HTTP статус
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL),
		errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrTitleTooLong),
		errors.Is(err, usecase.ErrDescriptionTooLong):
		h.logger.Debug("invalid request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrURLNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCapacityExhausted):
		h.logger.Error("short code space exhausted", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
