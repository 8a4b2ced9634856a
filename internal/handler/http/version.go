package http

import (
	"net/http"

	"github.com/MKhiriev/beichen-observer/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

type buildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfoResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
