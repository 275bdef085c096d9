package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_GenerateAndValidate(t *testing.T) {
	auth := NewAuthService("secret")
	userID := auth.GenerateUserID()

	token, err := auth.GenerateJWT(userID)
	require.NoError(t, err)

	got, err := auth.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAuthService_ValidateJWT_Invalid(t *testing.T) {
	auth := NewAuthService("secret")

	otherToken, err := NewAuthService("other-secret").GenerateJWT("user-1")
	require.NoError(t, err)

	expired := NewAuthService("secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * tokenTTL) }
	expiredToken, err := expired.GenerateJWT("user-1")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	emptyUserToken, err := auth.GenerateJWT("")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "foreign secret", token: otherToken},
		{name: "expired", token: expiredToken},
		{name: "alg none", token: noneToken},
		{name: "empty user id", token: emptyUserToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := auth.ValidateJWT(tt.token)

			assert.Error(t, err)
			assert.Empty(t, userID)
		})
	}
}

func TestAuthService_GetOrCreateUserFromCookie(t *testing.T) {
	auth := NewAuthService("secret")

	t.Run("issues new cookie when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()

		userID, err := auth.GetOrCreateUserFromCookie(req, rec)

		require.NoError(t, err)
		assert.NotEmpty(t, userID)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, UserTokenCookie, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		fromToken, err := auth.ValidateJWT(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, userID, fromToken)
	})

	t.Run("keeps user from valid cookie", func(t *testing.T) {
		token, err := auth.GenerateJWT("user-42")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: UserTokenCookie, Value: token})
		rec := httptest.NewRecorder()

		userID, err := auth.GetOrCreateUserFromCookie(req, rec)

		require.NoError(t, err)
		assert.Equal(t, "user-42", userID)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("replaces invalid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: UserTokenCookie, Value: "broken"})
		rec := httptest.NewRecorder()

		userID, err := auth.GetOrCreateUserFromCookie(req, rec)

		require.NoError(t, err)
		assert.NotEmpty(t, userID)
		assert.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestAuthService_UserFromCookie(t *testing.T) {
	auth := NewAuthService("secret")
	token, err := auth.GenerateJWT("user-7")
	require.NoError(t, err)

	withCookie := httptest.NewRequest(http.MethodGet, "/api/user/urls", nil)
	withCookie.AddCookie(&http.Cookie{Name: UserTokenCookie, Value: token})

	userID, ok := auth.UserFromCookie(withCookie)
	assert.True(t, ok)
	assert.Equal(t, "user-7", userID)

	_, ok = auth.UserFromCookie(httptest.NewRequest(http.MethodGet, "/api/user/urls", nil))
	assert.False(t, ok)
}
