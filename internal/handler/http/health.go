package http

import (
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/app"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getHealth").Msg("health check failed")
		utils.WriteJSON(w, healthResponse{Status: app.MsgStatusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, healthResponse{Status: app.MsgStatusOK}, http.StatusOK)
}
