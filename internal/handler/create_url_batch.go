package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

// CreateURLBatch обрабатывает POST запрос для создания нескольких коротких URL (batch формат)
func (h *Handler) CreateURLBatch(w http.ResponseWriter, req *http.Request) {
	userID, _ := h.getUserIDFromRequest(req)

	var requests []model.BatchShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&requests); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(requests) == 0 {
		h.logger.Warn("empty batch request", zap.String("remote_addr", req.RemoteAddr))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	urlStrings := make([]string, len(requests))
	for i, request := range requests {
		urlStrings[i] = request.OriginalURL
	}

	shortURLs, err := h.usecase.CreateShortURLsBatch(req.Context(), urlStrings, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]model.BatchShortenResponse, len(requests))
	for i, request := range requests {
		responses[i] = model.BatchShortenResponse{
			CorrelationID: request.CorrelationID,
			ShortURL:      shortURLs[i],
		}
	}

	h.writeJSON(w, http.StatusCreated, responses)
}
