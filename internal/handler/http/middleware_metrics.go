package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route pattern matched, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveRequest(r.Method, route, mw.Status(), time.Since(start))
	})
}
