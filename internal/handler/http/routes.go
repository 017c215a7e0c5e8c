package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.StripSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5))

	router.Get("/version", h.getServerVersion)
	router.Get("/health", h.getHealth)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/Users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)

		r.Group(func(r chi.Router) {
			r.Use(h.withAPIKey)
			r.Put("/{id}", h.updateUser(true))
			r.Patch("/{id}", h.updateUser(false))
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.Route("/Videos", func(r chi.Router) {
		r.Get("/", h.listVideos)
		r.Post("/", h.createVideo)
		r.Get("/{id}", h.getVideo)

		r.Group(func(r chi.Router) {
			r.Use(h.withAPIKey)
			r.Put("/{id}", h.updateVideo(true))
			r.Patch("/{id}", h.updateVideo(false))
			r.Delete("/{id}", h.deleteVideo)
		})
	})

	router.Route("/Comments", func(r chi.Router) {
		r.Get("/", h.listComments)
		r.Post("/", h.createComment)
		r.Get("/{id}", h.getComment)

		r.Group(func(r chi.Router) {
			r.Use(h.withAPIKey)
			r.Put("/{id}", h.updateComment(true))
			r.Patch("/{id}", h.updateComment(false))
			r.Delete("/{id}", h.deleteComment)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) allowedOrigins() []string {
	if len(h.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return h.cfg.AllowedOrigins
}
