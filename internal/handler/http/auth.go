package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/models"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeBody(w, r, &credentials) {
		return
	}

	resp, err := h.services.AuthService.SignIn(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", resp.User.ID.String()).Msg("user signed in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AuthService.SignOut(r.Context()), http.StatusOK)
}

// check returns the user the bearer token was issued to. It runs behind the
// auth middleware, so the header is known to be well formed.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	tokenString, err := getTokenFromAuthHeader(r.Header.Get(authorizationHeader))
	if err != nil {
		writeErrorMessage(w, err.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Check(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Version: h.buildInfo.BuildVersion(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}
