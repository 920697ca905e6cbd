// Package api provides the HTTP server for Dayflow: accounts, task CRUD,
// and the workload analysis endpoint consumed by the mobile client.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dayflow-app/dayflow/internal/app/account"
	"github.com/dayflow-app/dayflow/internal/app/analysis"
	"github.com/dayflow-app/dayflow/internal/domain"
	"github.com/dayflow-app/dayflow/internal/infra/sqlite"
)

// Version is reported by /api/version.
const Version = "0.1.0"

// Server is the Dayflow HTTP API server.
type Server struct {
	db             *sqlite.DB
	accounts       *account.Service
	engine         *analysis.Engine
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(db *sqlite.DB, accounts *account.Service, engine *analysis.Engine) *Server {
	return &Server{db: db, accounts: accounts, engine: engine}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": Version})
	})

	// Accounts
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Get("/users/{id}", s.handleGetUser)
	r.Get("/auth/session", s.handleSession)

	// Tasks
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/{userID}", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Put("/{id}", s.handleUpdateTask)
		r.Delete("/{id}", s.handleDeleteTask)
	})

	// Workload analysis
	r.Get("/analysis/{userID}/{date}", s.handleAnalyze)

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": msg,
	})
}

// writeDomainError maps a domain error to its HTTP status.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, errStatus(err), err.Error())
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound
	default:
		// Includes ErrStoreUnavailable: the store is this server's own
		// database, so a failed read is a server-side fault.
		return http.StatusInternalServerError
	}
}

// corsMiddleware adds CORS headers for the mobile client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
