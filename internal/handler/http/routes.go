package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/adm/login", h.login)
		r.Get("/api/v1/skills", h.getJobSkills)
		r.Get("/ping", h.ping)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/users/{id}", h.getProfile)
		r.Patch("/api/v1/users/{id}", h.modifyProfile)

		r.Delete("/api/v1/adm/logout", h.logout)
	})

	return router
}
