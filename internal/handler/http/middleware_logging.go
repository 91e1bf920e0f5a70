package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// withLogging writes one access line per request through the request
// logger, so the line carries the trace_id set by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", statusOf(ww)).
			Int("size", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Send()
	})
}

// statusOf reports 200 for a handler that never wrote a header.
func statusOf(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
