// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered through [chi.Mux.MethodNotAllowed]. chi calls
// it when a path matches but the method is not registered for it, including
// inside mounted subrouters. The request is answered with 404 instead of 405
// so that unsupported methods look the same as unknown paths.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Bool("path_known", router.Match(chi.NewRouteContext(), http.MethodGet, r.URL.Path)).
			Msg("method is not registered for path")

		writeError(w, r, ErrResourceNotFound)
	}
}
