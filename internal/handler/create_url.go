package handler

import (
	"io"
	"net/http"

	"go.uber.org/zap"
)

// CreateURL обрабатывает POST / с URL в теле запроса (text/plain)
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	userID, _ := h.getUserIDFromRequest(req)

	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.logger.Warn("failed to read request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shortURL, err := h.usecase.CreateShortURLFromString(req.Context(), string(body), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusCreated)
	if _, err := io.WriteString(w, shortURL); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
