package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/app"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/MKhiriev/dashcam-catalog/models"
)

func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	date, err := models.ParseDate(query.Get("date"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listVideos").Msg("invalid date filter")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidQuery, err))
		return
	}

	filter := models.VideoFilter{URL: query.Get("url"), Date: date}

	videos, err := h.services.VideoService.ListVideos(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listVideos").Msg("error listing videos")
		writeListError(w, r, err, []models.VideoResponse{})
		return
	}

	response := make([]models.VideoResponse, 0, len(videos))
	for _, video := range videos {
		response = append(response, models.NewVideoResponse(video))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createVideo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.VideoRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.createVideo").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	video, err := h.services.VideoService.CreateVideo(r.Context(), models.Video{
		URL:         deref(request.URL),
		UserID:      deref(request.UserID),
		Date:        deref(request.Date),
		Description: deref(request.Description),
		CityID:      deref(request.CityID),
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createVideo").Msg("error creating video")
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.createVideo").Int64("video_id", video.VideoID).Msg("video created")
	utils.WriteJSON(w, models.NewVideoResponse(video), http.StatusOK)
}

func (h *Handler) getVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	video, err := h.services.VideoService.GetVideo(r.Context(), videoID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getVideo").Int64("video_id", videoID).Msg("error getting video")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewVideoResponse(video), http.StatusOK)
}

// updateVideo serves PUT (full) and PATCH; only supplied fields are written.
func (h *Handler) updateVideo(full bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		videoID, err := idFromPath(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var request models.VideoRequest
		if err = decodeJSON(w, r, &request); err != nil {
			log.Err(err).Str("func", "*Handler.updateVideo").Msg("invalid JSON was passed")
			writeError(w, r, err)
			return
		}

		video, err := h.services.VideoService.UpdateVideo(r.Context(), models.VideoUpdate{
			VideoID:     videoID,
			URL:         request.URL,
			UserID:      request.UserID,
			Date:        request.Date,
			Description: request.Description,
			CityID:      request.CityID,
		}, full)
		if err != nil {
			log.Err(err).Str("func", "*Handler.updateVideo").Int64("video_id", videoID).Msg("error updating video")
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.NewVideoResponse(video), http.StatusOK)
	}
}

func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	videoID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VideoService.DeleteVideo(r.Context(), videoID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteVideo").Int64("video_id", videoID).Msg("error deleting video")
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.deleteVideo").Int64("video_id", videoID).Msg("video deleted")
	utils.WriteJSON(w, models.DeleteResponse{Contents: app.MsgVideoDeleted, ID: videoID}, http.StatusOK)
}
