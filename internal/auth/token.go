package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session — идентичность пользователя, восстановленная из подписанного токена.
// Не персистится: между логином и истечением токена данные могут устареть
// относительно записи User в БД.
type Session struct {
	UserID   int64
	Username string
	Email    string
	IssuedAt time.Time
}

// Claims — полезная нагрузка JWT.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

var ErrInvalidToken = errors.New("invalid auth token")

// Encode подписывает сессию HMAC-SHA256 и возвращает токен вместе со временем истечения.
func Encode(s Session, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	if !s.IssuedAt.IsZero() {
		now = s.IssuedAt.UTC()
	}
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   s.UserID,
		Username: s.Username,
		Email:    s.Email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Decode проверяет подпись и срок действия токена и восстанавливает сессию.
func Decode(token, secret string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	s := &Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	return s, nil
}
