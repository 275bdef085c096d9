package handler

import (
	"net/http"
)

// GetUserStats статистика по ссылкам текущего пользователя
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	h.writeStats(w, r, userID)
}

// GetStats статистика по всем ссылкам
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.writeStats(w, r, "")
}

func (h *Handler) writeStats(w http.ResponseWriter, r *http.Request, userID string) {
	stats, err := h.usecase.GetStats(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
