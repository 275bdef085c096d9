package handler

import (
	"net/http"
)

// GetUserURLs возвращает все ссылки аутентифицированного пользователя
func (h *Handler) GetUserURLs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		h.logger.Debug("user ID not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	urls, err := h.usecase.GetURLsByUserID(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if len(urls) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, urls)
}

// GetPublicURLs возвращает все активные ссылки
func (h *Handler) GetPublicURLs(w http.ResponseWriter, r *http.Request) {
	urls, err := h.usecase.GetPublicURLs(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, urls)
}
