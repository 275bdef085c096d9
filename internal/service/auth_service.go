package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	UserTokenCookie = "user_token"
	tokenTTL        = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims содержимое токена владельца ссылок
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// AuthService выдаёт и проверяет токен с непрозрачным идентификатором владельца ссылок
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// GenerateUserID генерирует уникальный идентификатор пользователя
func (a *AuthService) GenerateUserID() string {
	return uuid.New().String()
}

// GenerateJWT создает подписанный HS256 токен для пользователя
func (a *AuthService) GenerateJWT(userID string) (string, error) {
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет токен и извлекает user_id
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return a.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// GetOrCreateUserFromCookie извлекает user_id из куки или выдаёт новый идентификатор
func (a *AuthService) GetOrCreateUserFromCookie(r *http.Request, w http.ResponseWriter) (string, error) {
	if cookie, err := r.Cookie(UserTokenCookie); err == nil && cookie.Value != "" {
		if userID, err := a.ValidateJWT(cookie.Value); err == nil {
			return userID, nil
		}
	}

	userID := a.GenerateUserID()
	token, err := a.GenerateJWT(userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     UserTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	return userID, nil
}

// UserFromCookie возвращает user_id только из валидной куки, без выдачи нового
func (a *AuthService) UserFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(UserTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	userID, err := a.ValidateJWT(cookie.Value)
	if err != nil {
		return "", false
	}

	return userID, true
}
