package middleware

import (
	"net/http"

	"github.com/dome-hr/dome-backend/pkg/logger"

	"github.com/google/uuid"
)

// RequestID tags every request with a trace identifier. The SPA gateway
// forwards X-Trace-ID when it has one; otherwise a fresh UUID is minted.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)

		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
