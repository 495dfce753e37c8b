package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-bff/internal/app"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/service"
	"github.com/MKhiriev/go-user-bff/internal/store"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/models"
)

// errorStatus binds an error kind to its response. An empty message means
// the error text itself is returned to the client.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched top to bottom; more specific kinds come first
// because several of them wrap a broader one (ErrMalformedResponse wraps
// ErrInvalidData, hashing failures carry both ErrPassword and ErrDatabase).
var errorStatuses = []errorStatus{
	{target: store.ErrMalformedResponse, status: http.StatusInternalServerError, message: app.MsgMalformedResponse},
	{target: store.ErrUserNotFound, status: http.StatusNotFound, message: app.MsgUserNotFound},
	{target: store.ErrInvalidData, status: http.StatusBadRequest},
	{target: store.ErrPassword, status: http.StatusInternalServerError, message: app.MsgPasswordError},
	{target: store.ErrDatabase, status: http.StatusInternalServerError, message: app.MsgDatabaseError},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped status with an ErrorResponse body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorMessage(w, message, status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
