package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/models"
)

func (h *Handler) listCampuses(w http.ResponseWriter, r *http.Request) {
	campuses, err := h.services.ReferenceService.ListCampuses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, campuses)
}

func (h *Handler) createCampus(w http.ResponseWriter, r *http.Request) {
	var request models.CreateCampusRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	campus, err := h.services.ReferenceService.CreateCampus(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, campus, http.StatusCreated)
}

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.services.ReferenceService.ListClasses(r.Context(), r.URL.Query().Get("campusId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, classes)
}

func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	var request models.CreateClassRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	class, err := h.services.ReferenceService.CreateClass(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, class, http.StatusCreated)
}

// listUsers answers GET /api/users?role=&page=&pageSize=. Malformed numbers
// fall back to the defaults.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	users, err := h.services.ReferenceService.ListUsers(r.Context(), models.UserFilter{
		Role:     query.Get("role"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if users.Data == nil {
		users.Data = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	user, err := h.services.ReferenceService.CreateUser(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusCreated)
}

func writeList(w http.ResponseWriter, entities []models.ReferenceEntity) {
	if entities == nil {
		entities = []models.ReferenceEntity{}
	}
	utils.WriteJSON(w, entities, http.StatusOK)
}
