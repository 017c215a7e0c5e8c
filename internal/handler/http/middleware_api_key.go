// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/MKhiriev/dashcam-catalog/models"
)

// maxBodyBytes bounds every body read by the gate.
const maxBodyBytes = 1 << 20

// withAPIKey is the authorization gate in front of mutating /{id} routes.
//
// Safe methods pass through untouched. For every other method the JSON body
// must carry "username" and "api_key"; they are verified through
// CredentialService and the verified user ID is stored in the request
// context under [utils.UserIDCtxKey]. The body is restored afterwards so the
// downstream handler can decode it again.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Warn().Str("func", "*Handler.withAPIKey").Int64("limit", tooLarge.Limit).Msg("request body too large")
				writeError(w, r, ErrBodyTooLarge)
				return
			}
			log.Err(err).Str("func", "*Handler.withAPIKey").Msg("error reading request body")
			writeError(w, r, ErrAPIKeyMissing)
			return
		}

		var credentials models.Credentials
		if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &credentials) != nil {
			log.Warn().Str("func", "*Handler.withAPIKey").Msg("request body is not a JSON object")
			writeError(w, r, ErrAPIKeyMissing)
			return
		}

		if credentials.Username == "" || credentials.APIKey == "" {
			log.Warn().Str("func", "*Handler.withAPIKey").Msg("username or api key not provided")
			writeError(w, r, ErrAPIKeyMissing)
			return
		}

		user, err := h.services.CredentialService.Verify(ctx, credentials.Username, credentials.APIKey)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.withAPIKey").Str("username", credentials.Username).Msg("api key verification failed")
			writeError(w, r, err)
			return
		}

		logger.AnnotateUser(ctx, user.UserID)

		r.Body = io.NopCloser(bytes.NewReader(body))
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
