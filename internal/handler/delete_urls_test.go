package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/link-shortener/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestDeleteURLs(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     string
		setup      func(h *mocks.MockLinkUsecase)
		wantStatus int
	}{
		{
			name:   "accepted",
			body:   `["abc123","def456"]`,
			userID: "u1",
			setup: func(m *mocks.MockLinkUsecase) {
				m.EXPECT().DeleteURLs([]string{"abc123", "def456"}, "u1").Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{name: "unauthorized", body: `["abc123"]`, wantStatus: http.StatusUnauthorized},
		{name: "invalid json", body: `{"codes":1}`, userID: "u1", wantStatus: http.StatusBadRequest},
		{name: "empty list", body: `[]`, userID: "u1", wantStatus: http.StatusBadRequest},
		{
			name:   "usecase failure",
			body:   `["abc123"]`,
			userID: "u1",
			setup: func(m *mocks.MockLinkUsecase) {
				m.EXPECT().DeleteURLs([]string{"abc123"}, "u1").Return(errors.New("queue closed")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, mockUsecase := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(mockUsecase)
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/user/urls", strings.NewReader(tt.body))
			if tt.userID != "" {
				req = withUser(req, tt.userID)
			}
			w := httptest.NewRecorder()

			// Act
			h.DeleteURLs(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
