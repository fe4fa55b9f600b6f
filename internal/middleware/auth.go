package middleware

import (
	"NoteKeeper/internal/auth"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithAuth разбирает заголовок Authorization: Bearer <token> и при валидном
// токене кладёт восстановленную сессию в контекст запроса. Невалидный или
// отсутствующий токен оставляет запрос анонимным — решение принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if ok && token != "" {
				if session, err := auth.Decode(token, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext возвращает сессию запроса, если аутентификация прошла.
func GetSessionFromContext(ctx context.Context) (*auth.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*auth.Session)
	return s, ok
}
