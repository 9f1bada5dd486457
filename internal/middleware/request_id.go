package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// contextKey はコンテキストキーの衝突を避けるための非公開型。
type contextKey string

const requestIDContextKey contextKey = "request_id"

// ErrRequestIDNotFound はコンテキストにリクエストIDが存在しないことを示す。
var ErrRequestIDNotFound = errors.New("request id not found in context")

// RequestIDFromContext はコンテキストからリクエストIDを取り出す。
func RequestIDFromContext(ctx context.Context) (string, error) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || requestID == "" {
		return "", ErrRequestIDNotFound
	}
	return requestID, nil
}

// NewRequestIDMiddleware はリクエストごとに一意のIDを発行してコンテキストに格納し、
// X-Request-IDレスポンスヘッダーとして返すミドルウェアを生成する。
// クライアントがX-Request-IDヘッダーを送ってきた場合はその値を引き継ぐ。
func NewRequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set("X-Request-ID", requestID)

			ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
