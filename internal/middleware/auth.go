package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"taskboard/internal/auth"
	"taskboard/internal/logger"

	"go.uber.org/zap"
)

const principalKey contextKey = "principal"

type TokenVerifier interface {
	VerifyToken(token string) (*auth.Principal, error)
}

// Auth извлекает принципала из Bearer-токена и кладёт его в контекст
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, r, "отсутствует заголовок Authorization")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, r, "ожидается формат Bearer <token>")
				return
			}

			principal, err := verifier.VerifyToken(parts[1])
			if err != nil {
				logger.Warn("HTTP: Невалидный токен",
					zap.String("client_ip", r.RemoteAddr),
					zap.Error(err))
				unauthorized(w, r, "токен недействителен")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipal(ctx context.Context) (*auth.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*auth.Principal)
	return principal, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"error":      "UNAUTHORIZED",
		"message":    message,
		"request_id": GetRequestID(r.Context()),
	})
}
