package http

import (
	"net/http"

	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCorrelationID)
	router.Use(h.withOutcomeLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authentication, transaction or tenant
	router.Method(http.MethodGet, "/health", h.pipeline.Route(h.health, pipeline.Public()))

	router.Group(func(r chi.Router) {
		r.Method(http.MethodGet, "/me", h.pipeline.Route(h.me, pipeline.RequireIdentity()))
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
