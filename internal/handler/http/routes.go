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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/api/restaurants", func(r chi.Router) {
		r.Get("/", h.listRestaurants)
		r.Get("/form", h.searchForm)
		r.Post("/form", h.searchSubmit)
		r.Get("/{id}", h.getRestaurant)

		// mutating routes require a bearer token
		r.Group(func(protected chi.Router) {
			protected.Use(h.auth)
			protected.Post("/", h.createRestaurant)
			protected.Put("/{id}", h.updateRestaurant)
			protected.Delete("/{id}", h.deleteRestaurant)
		})
	})

	return router
}
