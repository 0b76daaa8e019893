package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// HeaderDJID заголовок идентификации диджея
const HeaderDJID = "X-DJ-ID"

type contextKey string

const djIDKey contextKey = "djID"

// Auth извлекает идентификатор диджея из заголовка X-DJ-ID
// и кладет его в контекст запроса. Запросы без валидного заголовка отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderDJID)
		if raw == "" {
			respondUnauthorized(w, "отсутствует заголовок X-DJ-ID")
			return
		}

		djID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || djID <= 0 {
			respondUnauthorized(w, "некорректный заголовок X-DJ-ID")
			return
		}

		ctx := context.WithValue(r.Context(), djIDKey, djID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetDJID возвращает идентификатор диджея из контекста
func GetDJID(ctx context.Context) (int64, bool) {
	djID, ok := ctx.Value(djIDKey).(int64)
	return djID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
