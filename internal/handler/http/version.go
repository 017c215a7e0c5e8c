package http

import (
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
)

// Build metadata headers attached to the /version response.
const (
	buildVersionHeader = "X-Build-Version"
	buildDateHeader    = "X-Build-Date"
	buildCommitHeader  = "X-Build-Commit"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	w.Header().Set(buildVersionHeader, buildInfo.BuildVersion())
	w.Header().Set(buildDateHeader, buildInfo.BuildDate())
	w.Header().Set(buildCommitHeader, buildInfo.BuildCommit())

	if _, err := utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
