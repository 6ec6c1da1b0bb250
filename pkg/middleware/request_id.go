package middleware

import (
	"net/http"

	"ticket-purchase/pkg/utils"

	"github.com/google/uuid"
)

// RequestID middleware tags every request with an id. An incoming
// X-Request-ID is honored so ids stay stable across service hops; the id
// is propagated to the collaborator calls by the gateway clients.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
