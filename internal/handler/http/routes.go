package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		middleware.Compress(5, "application/json", "text/plain"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Handle("/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version/", h.getServerVersion)
		r.Post("/users", h.signup)
		r.With(h.withLoginRateLimit).Post("/users/login", h.login)
		r.Post("/users/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.With(h.adminOnly).Get("/users", h.listUsers)
			r.Get("/users/{id}", h.getUser)
			r.Put("/users/{id}", h.updateUser)
			r.Delete("/users/{id}", h.deleteUser)
			r.Get("/users/{id}/documents", h.userDocuments)

			r.Route("/roles", func(r chi.Router) {
				r.Use(h.adminOnly)
				r.Post("/", h.createRole)
				r.Get("/", h.listRoles)
				r.Get("/{id}", h.getRole)
				r.Put("/{id}", h.updateRole)
				r.Delete("/{id}", h.deleteRole)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.createDocument)
				r.Get("/", h.listDocuments)
				r.Get("/{id}", h.getDocument)
				r.Put("/{id}", h.updateDocument)
				r.Delete("/{id}", h.deleteDocument)
			})

			r.Get("/search/documents", h.searchDocuments)
		})
	})

	return router
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, r, app.MsgRouteNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, r, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
