package main

import (
	"net/http"

	"github.com/GHutch55/fortune/backend/api/v1/fortune"
	"github.com/GHutch55/fortune/backend/api/v1/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(svc *fortune.Service, allowedOrigins []string) http.Handler {
	fortuneHandler := &handlers.FortuneHandler{Fortunes: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", handlers.HealthHandler(svc))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.ApiInfoHandler)
		// Every draw is random, so responses must never be cached.
		r.With(middleware.NoCache).Get("/fortune", fortuneHandler.GetFortune)
	})

	return r
}
