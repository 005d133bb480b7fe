package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"jindam_vocab/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーターの組み立てに必要なハンドラと設定
type RouterDeps struct {
	Health           *HealthHandler
	Provider         *ProviderHandler
	Vocabulary       *VocabularyHandler
	CORS             cors.Options
	DefaultNamespace string
	RequestTimeout   time.Duration
	Logger           *slog.Logger
}

// NewRouter は chi のルーターを組み立てます
func NewRouter(d RouterDeps) http.Handler {
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))
	r.Use(cors.New(d.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(d.RequestTimeout))

	r.Get("/health", d.Health.GetLiveness)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", d.Health.GetHealth)
		r.Post("/word-info", d.Provider.PostWordInfo)
		r.Post("/generate-examples", d.Provider.PostGenerateExamples)

		r.Route("/words", func(r chi.Router) {
			r.Use(middleware.ClientNamespaceMiddleware(d.DefaultNamespace))
			r.Get("/", d.Vocabulary.GetWords)
			r.Post("/", d.Vocabulary.PostWord)
			r.Get("/dates", d.Vocabulary.GetDates)
			r.Post("/import", d.Vocabulary.PostImport)
			r.Get("/{id}", d.Vocabulary.GetWord)
			r.Delete("/{id}", d.Vocabulary.DeleteWord)
		})
	})

	return r
}

// DefaultCORSOptions は設定が無い場合の CORS 設定
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.ClientIDHeader},
		AllowCredentials: true,
	}
}
