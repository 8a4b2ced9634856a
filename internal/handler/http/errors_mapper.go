package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/beichen-observer/internal/app"
	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/service"
	"github.com/MKhiriev/beichen-observer/internal/store"
	"github.com/MKhiriev/beichen-observer/internal/utils"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrInvalidRecord, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAuthDisabled, http.StatusNotImplemented},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrReferenceAlreadyExists, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text sent to the caller. Database failures carry
// the message reported by PostgreSQL.
func errorMessage(err error, status int) string {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return app.MsgRecordNotFound
	case status == http.StatusInternalServerError, errors.Is(err, store.ErrInvalidRecord):
		return store.DatabaseMessage(err)
	default:
		return err.Error()
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status == http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteError(w, errorMessage(err, status), status)
}

// decodeJSON reads the request body into dst and answers 400 when it is not
// valid JSON for dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, fmt.Sprintf("%s: %v", app.MsgInvalidJSON, err), http.StatusBadRequest)
		return false
	}
	return true
}
