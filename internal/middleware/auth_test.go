package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// echoUser отвечает user_id из контекста
func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(userID))
	})
}

func TestAuthenticate(t *testing.T) {
	auth := service.NewAuthService("secret")
	am := NewAuthMiddleware(auth, zaptest.NewLogger(t))
	h := am.Authenticate(echoUser(t))

	t.Run("new user gets cookie", func(t *testing.T) {
		w := httptest.NewRecorder()

		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)

		userID, err := auth.ValidateJWT(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, userID, w.Body.String())
	})

	t.Run("known user keeps id", func(t *testing.T) {
		token, err := auth.GenerateJWT("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: service.UserTokenCookie, Value: token})
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, "user-1", w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestRequireAuth(t *testing.T) {
	auth := service.NewAuthService("secret")
	am := NewAuthMiddleware(auth, zaptest.NewLogger(t))
	h := am.RequireAuth(echoUser(t))

	token, err := auth.GenerateJWT("user-1")
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantBody   string
	}{
		{name: "no cookie", wantStatus: http.StatusUnauthorized},
		{name: "forged cookie", cookie: &http.Cookie{Name: service.UserTokenCookie, Value: "forged"}, wantStatus: http.StatusUnauthorized},
		{name: "valid cookie", cookie: &http.Cookie{Name: service.UserTokenCookie, Value: token}, wantStatus: http.StatusOK, wantBody: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/urls", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())

	assert.False(t, ok)
}
