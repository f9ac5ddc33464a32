// Package api exposes the HTTP surface: match requests, match results,
// interview practice and tailored resume generation.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/streadway/amqp"

	"careerlens/internal/azure"
	"careerlens/internal/database"
	"careerlens/internal/interview"
	"careerlens/internal/log"
	"careerlens/internal/resumegen"
	"careerlens/internal/storage"
)

// Server wires the HTTP handlers to their dependencies.
type Server struct {
	db           *database.Queries
	rabbitConn   *amqp.Connection
	storage      *storage.Client
	interviewer  *interview.Interviewer
	generator    *resumegen.Generator
	templatePath string
}

func NewServer(db *database.Queries, rabbitConn *amqp.Connection, az *azure.Client, store *storage.Client, templatePath string) *Server {
	return &Server{
		db:           db,
		rabbitConn:   rabbitConn,
		storage:      store,
		interviewer:  interview.NewInterviewer(az),
		generator:    resumegen.NewGenerator(az),
		templatePath: templatePath,
	}
}

// Router builds the chi router with the middleware stack applied.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/match-requests", s.handleCreateMatchRequest)
		r.Get("/match-requests/{id}", s.handleGetMatchRequest)

		r.Route("/seekers/{id}", func(r chi.Router) {
			r.Post("/resume", s.handleUploadResume)
			r.Get("/matches", s.handleGetMatches)
			r.Get("/matches/{jobID}", s.handleGetMatchDetail)
			r.Delete("/matches", s.handleDeleteMatches)
			r.Get("/stats", s.handleGetStats)
			r.Get("/jobs/{jobID}/simple-match", s.handleSimpleMatch)
			r.Post("/tailored-resume", s.handleTailoredResume)
		})

		r.Route("/interviews", func(r chi.Router) {
			r.Post("/question", s.handleInterviewQuestion)
			r.Post("/evaluate", s.handleInterviewEvaluate)
			r.Post("/summary", s.handleInterviewSummary)
		})

		r.Get("/jobs", s.handleListJobs)
		r.Get("/jobs/{id}", s.handleGetJob)
	})

	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	logger := log.WithComponent("api")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("http server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	logger := log.WithComponent("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return dec.Decode(v)
}
