package http

import (
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/app"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/MKhiriev/dashcam-catalog/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := int64FromQuery(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	videoID, err := int64FromQuery(r, "video_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListComments(r.Context(), models.CommentFilter{
		UserID:  userID,
		VideoID: videoID,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.listComments").Msg("error listing comments")
		writeListError(w, r, err, []models.CommentResponse{})
		return
	}

	response := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, models.NewCommentResponse(comment))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CommentRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), models.Comment{
		Body:    deref(request.Body),
		UserID:  deref(request.UserID),
		VideoID: deref(request.VideoID),
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("error creating comment")
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.createComment").Int64("comment_id", comment.CommentID).Msg("comment created")
	utils.WriteJSON(w, models.NewCommentResponse(comment), http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.GetComment(r.Context(), commentID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getComment").Int64("comment_id", commentID).Msg("error getting comment")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewCommentResponse(comment), http.StatusOK)
}

func (h *Handler) updateComment(full bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		commentID, err := idFromPath(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var request models.CommentRequest
		if err = decodeJSON(w, r, &request); err != nil {
			log.Err(err).Str("func", "*Handler.updateComment").Msg("invalid JSON was passed")
			writeError(w, r, err)
			return
		}

		comment, err := h.services.CommentService.UpdateComment(r.Context(), models.CommentUpdate{
			CommentID: commentID,
			Body:      request.Body,
			UserID:    request.UserID,
			VideoID:   request.VideoID,
		}, full)
		if err != nil {
			log.Err(err).Str("func", "*Handler.updateComment").Int64("comment_id", commentID).Msg("error updating comment")
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.NewCommentResponse(comment), http.StatusOK)
	}
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	commentID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.DeleteComment(r.Context(), commentID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteComment").Int64("comment_id", commentID).Msg("error deleting comment")
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.deleteComment").Int64("comment_id", commentID).Msg("comment deleted")
	utils.WriteJSON(w, models.DeleteResponse{Contents: app.MsgCommentDeleted, ID: commentID}, http.StatusOK)
}
