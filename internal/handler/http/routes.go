package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/beichen-observer/internal/app"
	"github.com/MKhiriev/beichen-observer/internal/utils"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 10 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Handle("/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))
		r.Get("/version", h.getServerVersion)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		if h.services.AuthService.Enabled() {
			r.Use(h.auth)
		}

		r.Get("/api/version", h.getBuildInfo)

		r.Route("/api/records", recordRoutes(h.services.ObservationService))
		r.Route("/api/duty-reports", recordRoutes(h.services.DutyReportService))

		r.Get("/api/campus", h.listCampuses)
		r.Post("/api/campus", h.createCampus)
		r.Get("/api/classes", h.listClasses)
		r.Post("/api/classes", h.createClass)
		r.Get("/api/users", h.listUsers)
		r.Post("/api/users", h.createUser)
	})

	return router
}
