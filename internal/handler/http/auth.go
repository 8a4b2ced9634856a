package http

import (
	"net/http"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	response, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("email", credentials.Email).Msg("user logged in")
	utils.WriteJSON(w, response, http.StatusOK)
}
