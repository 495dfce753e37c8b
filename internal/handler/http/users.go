package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PublicUsers(users), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input models.NewUser
	if !decodeBody(w, r, &input) {
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID.String()).Msg("user created")
	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var input models.NewUser
	if !decodeBody(w, r, &input) {
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", id.String()).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}

// userIDParam parses the {id} path parameter. On failure it writes 400 and
// reports false.
func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid user id in path")
		writeErrorMessage(w, ErrInvalidUserID.Error(), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into v. On failure it writes 400
// and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeJSON(r, v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, utils.ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
