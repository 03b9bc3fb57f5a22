package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type key int

const requestIdKey key = 0

const requestIdHeader = "X-Request-Id"

// RequestId tags every request with an id, reusing the client's if it sent
// one, so log lines and responses can be correlated.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)

		ctx := context.WithValue(r.Context(), requestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestId returns the id set by RequestId, or "" outside the middleware.
func GetRequestId(r *http.Request) string {
	id, ok := r.Context().Value(requestIdKey).(string)
	if !ok {
		return ""
	}
	return id
}
