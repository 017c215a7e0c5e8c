package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
)

// withLogging writes one access line per request. The request logger is read
// after the handler returns so fields added downstream, such as the user id
// set by withAPIKey, appear on the line.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.Status()).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
