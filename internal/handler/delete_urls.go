package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// DeleteURLs принимает список кодов пользователя на деактивацию
func (h *Handler) DeleteURLs(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.logger.Error("user ID not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var codes []string
	if err := json.NewDecoder(req.Body).Decode(&codes); err != nil {
		h.logger.Warn("failed to decode request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(codes) == 0 {
		h.logger.Debug("empty codes list")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.usecase.DeleteURLs(codes, userID); err != nil {
		h.logger.Error("failed to initiate links deactivation", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// 202: деактивация выполняется в фоне
	w.WriteHeader(http.StatusAccepted)
}
