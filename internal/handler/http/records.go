package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/service"
	"github.com/MKhiriev/beichen-observer/internal/utils"
	"github.com/MKhiriev/beichen-observer/models"
)

// recordHandler serves the six record operations of one record kind.
type recordHandler[T any] struct {
	service service.RecordService[T]
}

func recordRoutes[T any](svc service.RecordService[T]) func(chi.Router) {
	h := &recordHandler[T]{service: svc}
	return func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Delete("/", h.deleteAll)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	}
}

func (h *recordHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	var record T
	if !decodeJSON(w, r, &record) {
		return
	}

	id, err := h.service.Create(r.Context(), record)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	auditLog(r).Str("id", id.String()).Msg("record saved")
	utils.WriteJSON(w, models.MutationResponse{Success: true, ID: id}, http.StatusOK)
}

func (h *recordHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []T{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *recordHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), recordID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *recordHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	var record T
	if !decodeJSON(w, r, &record) {
		return
	}

	id, err := h.service.Update(r.Context(), recordID(r), record)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	auditLog(r).Str("id", id.String()).Msg("record updated")
	utils.WriteJSON(w, models.MutationResponse{Success: true, ID: id}, http.StatusOK)
}

func (h *recordHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	id := recordID(r)
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	auditLog(r).Str("id", id.String()).Msg("record deleted")
	utils.WriteJSON(w, models.MutationResponse{Success: true, ID: id}, http.StatusOK)
}

func (h *recordHandler[T]) deleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	auditLog(r).Int64("count", count).Msg("all records deleted")
	utils.WriteJSON(w, models.MutationResponse{Success: true, Count: &count}, http.StatusOK)
}

// auditLog starts an info entry naming the authenticated user, if any.
func auditLog(r *http.Request) *zerolog.Event {
	event := logger.FromRequest(r).Info()
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		event = event.Str("user_id", userID.String())
	}
	return event
}

func recordID(r *http.Request) models.ID {
	return models.ID(chi.URLParam(r, "id"))
}
