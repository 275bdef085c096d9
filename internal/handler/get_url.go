package handler

import (
	"net/http"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/go-chi/chi/v5"
)

// GetURL засчитывает переход и перенаправляет на оригинальный URL
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")

	originalURL, err := h.usecase.GetOriginalURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusTemporaryRedirect)
}

// VisitURL засчитывает переход и отдаёт адрес назначения в JSON
func (h *Handler) VisitURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")

	originalURL, err := h.usecase.GetOriginalURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.VisitResponse{RedirectTo: originalURL})
}

// GetURLInfo отдаёт описание ссылки, счётчик переходов не меняется
func (h *Handler) GetURLInfo(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")

	info, err := h.usecase.GetLinkInfo(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, info)
}
