package http

import (
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/app"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/MKhiriev/dashcam-catalog/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := models.UserFilter{Username: r.URL.Query().Get("username")}

	users, err := h.services.UserService.ListUsers(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		writeListError(w, r, err, []models.UserResponse{})
		return
	}

	response := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, models.NewUserResponse(user))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	user, key, err := h.services.UserService.CreateUser(r.Context(), request.Username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.createUser").Int64("user_id", user.UserID).Msg("user created")
	utils.WriteJSON(w, models.CreatedUserResponse{
		Username: user.Username,
		ID:       user.UserID,
		Key:      key,
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUser").Int64("user_id", userID).Msg("error getting user")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
}

// updateUser serves PUT (full) and PATCH. The caller is the user verified by
// the gate; the rename target travels in "new_username".
func (h *Handler) updateUser(full bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, err := idFromPath(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var request models.UpdateUserRequest
		if err = decodeJSON(w, r, &request); err != nil {
			log.Err(err).Str("func", "*Handler.updateUser").Msg("invalid JSON was passed")
			writeError(w, r, err)
			return
		}

		user, err := h.services.UserService.UpdateUser(r.Context(), models.UserUpdate{
			UserID:   userID,
			Username: request.NewUsername,
		}, full)
		if err != nil {
			log.Err(err).Str("func", "*Handler.updateUser").Int64("user_id", userID).Msg("error updating user")
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("user_id", userID).Msg("error deleting user")
		writeError(w, r, err)
		return
	}

	log.Info().Str("func", "*Handler.deleteUser").Int64("user_id", userID).Msg("user deleted")
	utils.WriteJSON(w, models.DeleteResponse{Contents: app.MsgUserDeleted, ID: userID}, http.StatusOK)
}
