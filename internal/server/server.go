// Package server binds the quiz pipeline and grading engine to HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/learncheck/learncheck/internal/config"
	"github.com/learncheck/learncheck/internal/explain"
	"github.com/learncheck/learncheck/internal/material"
	"github.com/learncheck/learncheck/internal/metrics"
	"github.com/learncheck/learncheck/internal/quiz"
)

// QuizProducer runs the generate-audit loop.
type QuizProducer interface {
	ProduceQuiz(ctx context.Context, materialText string, difficulty quiz.Difficulty) (*quiz.Quiz, error)
}

// MaterialSource fetches tutorial content and learner preferences.
type MaterialSource interface {
	FetchTutorial(ctx context.Context, id string) (*material.Tutorial, error)
	FetchPreferences(ctx context.Context, userID string) material.Preferences
}

// Explainer produces conversational wrong-answer explanations.
type Explainer interface {
	Explain(ctx context.Context, input explain.Input) (string, error)
}

// Server is the HTTP API surface.
type Server struct {
	log       *zap.Logger
	cfg       config.Config
	producer  QuizProducer
	materials MaterialSource
	explainer Explainer
}

// New creates a Server. Explainer may be nil; the explain endpoint then
// reports the capability as unavailable.
func New(log *zap.Logger, cfg config.Config, producer QuizProducer, materials MaterialSource, explainer Explainer) *Server {
	return &Server{
		log:       log,
		cfg:       cfg,
		producer:  producer,
		materials: materials,
		explainer: explainer,
	}
}

// Router assembles the chi router with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.logRequests)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Post("/quiz", s.handleQuiz)
		api.Post("/grade", s.handleGrade)
		api.Post("/explain", s.handleExplain)
		api.Get("/users/{userID}/preferences", s.handlePreferences)
	})

	return r
}

// ListenAndServe runs the HTTP server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
