package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mahmoodhamdi/scraper-api/internal/api/handlers"
	"github.com/mahmoodhamdi/scraper-api/internal/api/middleware"
	"github.com/mahmoodhamdi/scraper-api/internal/config"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS())

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	tournamentHandler := handlers.NewTournamentHandler(services.Tournament)
	matchHandler := handlers.NewMatchHandler(services.Match)
	ewcHandler := handlers.NewEWCHandler(services.EWC)
	newsHandler := handlers.NewNewsHandler(services.News, cfg.UploadDir)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tournaments", tournamentHandler.Get)
		r.Post("/matches", matchHandler.Get)

		r.Route("/ewc", func(r chi.Router) {
			r.Post("/matches", ewcHandler.GroupMatches)
			r.Get("/matches", ewcHandler.AllMatches)
			r.Get("/matches/days", ewcHandler.MatchesByDay)
			r.Get("/events", ewcHandler.Events)
			r.Get("/games", ewcHandler.Games)
			r.Get("/teams", ewcHandler.Teams)
			r.Get("/prizes", ewcHandler.Prizes)
			r.Get("/info", ewcHandler.Info)
		})

		r.Route("/news", func(r chi.Router) {
			r.Get("/", newsHandler.List)
			r.Post("/", newsHandler.Create)
			r.Get("/{id}", newsHandler.Get)
			r.Put("/{id}", newsHandler.Update)
			r.Delete("/{id}", newsHandler.Delete)
		})
	})

	// Uploaded thumbnails
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	return r
}
