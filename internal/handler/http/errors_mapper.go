package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/adapter"
	"github.com/MKhiriev/dashcam-catalog/internal/app"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/service"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/MKhiriev/dashcam-catalog/internal/validators"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is matched top to bottom; the first entry whose target
// is found in the error chain decides the status.
var errorStatusTable = []errorStatus{
	{ErrAPIKeyMissing, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{ErrResourceNotFound, http.StatusNotFound},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},

	{service.ErrInvalidCredential, http.StatusForbidden},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrVideoNotFound, http.StatusNotFound},
	{store.ErrCommentNotFound, http.StatusNotFound},
	{store.ErrCityNotFound, http.StatusNotFound},
	{store.ErrReferenceNotFound, http.StatusNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusBadRequest},
	{store.ErrVideoURLAlreadyExists, http.StatusBadRequest},

	{validators.ErrUnsupportedType, http.StatusInternalServerError},
	{validators.ErrUnknownField, http.StatusInternalServerError},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{adapter.ErrURLUnreachable, http.StatusBadRequest},
	{adapter.ErrURLNotSuccessful, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with {"message": ...}. Server-side failures get a
// generic message; their details only go to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Msg("request failed")
		message = app.MsgInternalServerError
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// writeListError answers a failed listing. A filter that matched nothing is
// a 404 carrying the empty list rather than a message.
func writeListError(w http.ResponseWriter, r *http.Request, err error, empty any) {
	if status := statusFromError(err); status == http.StatusNotFound {
		utils.WriteJSON(w, empty, status)
		return
	}
	writeError(w, r, err)
}
