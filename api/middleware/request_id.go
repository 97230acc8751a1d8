package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
)

const requestIDHeader = "X-Softline-Request-Id"

// RequestID tags every request with an identifier, echoed back to the client
// and carried on the context logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Trust an inbound ID from the edge proxy, mint one otherwise.
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
