package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tobiajayi/daily-verse-api/internal/auth"
	"github.com/tobiajayi/daily-verse-api/internal/notify"
	"github.com/tobiajayi/daily-verse-api/internal/verse"
	"github.com/tobiajayi/daily-verse-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.ServerIsWorking)

	r.Route("/daily-verse-api/v1", func(r chi.Router) {
		s.loadVerseRoutes(r)
		s.loadNotificationRoutes(r)
	})
	r.Get("/daily-verse-api/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Daily verse api"
	response.Success(w, resp, "Success")
}

func (s *Server) loadVerseRoutes(router chi.Router) {
	verseHandler := verse.NewHandler(s.service)

	router.Get("/verse", verseHandler.GetVerseHandler)
	router.Get("/stage", verseHandler.GetStageHandler)
	router.Get("/history", verseHandler.GetHistoryHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware(s.cfg.APIKey))
		r.Post("/refresh", verseHandler.RefreshHandler)
		r.Post("/reveal-complete", verseHandler.RevealCompleteHandler)
	})
}

func (s *Server) loadNotificationRoutes(router chi.Router) {
	notifyHandler := notify.NewHandler(s.schedRepo)

	router.Get("/notifications", notifyHandler.GetNotificationsHandler)
}
