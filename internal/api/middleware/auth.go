package middleware

import (
	"context"
	"net/http"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
)

type userIDContextKey struct{}

const userIDHeader = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст
// Аутентификация как таковая выполняется на API gateway, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	return userID, ok
}
