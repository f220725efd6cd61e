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

	router.Get("/ping", h.ping)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/password", h.changePassword)
		r.Post("/profile", h.updateProfile)
	})

	router.Route("/api/lists", func(r chi.Router) {
		r.Post("/", h.saveList)
		r.Get("/{userID}", h.getLists)
		r.Get("/{userID}/detailed", h.getListsDetailed)
		r.Put("/{listID}", h.updateList)
		r.Delete("/{listID}", h.deleteList)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
