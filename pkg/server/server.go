package server

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/maya-clifford/final-case/pkg/api"
	"github.com/maya-clifford/final-case/pkg/domain"
	"github.com/maya-clifford/final-case/pkg/logger"
)

// Options configures the HTTP surface around the API handlers.
type Options struct {
	StaticDir  string
	CORSOrigin string
}

// Server holds references to the store handle, router and logger.
type Server struct {
	router  *mux.Router
	handler *api.Handler
	log     logrus.FieldLogger
	opts    Options
}

// NewServer creates a new instance of Server around an already opened store.
func NewServer(store domain.WorkoutStore, opts Options, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}

	s := &Server{
		router:  mux.NewRouter(),
		handler: api.NewHandler(store, log),
		log:     log,
		opts:    opts,
	}
	s.routes()

	s.router.Use(s.requestMiddleware)

	// Unmatched requests skip router middleware, so wrap them explicitly.
	s.router.NotFoundHandler = s.requestMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSONError(w, http.StatusNotFound, "Not found")
	}))
	s.router.MethodNotAllowedHandler = s.requestMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}))

	return s
}

// Router exposes the full handler chain, CORS included.
func (s *Server) Router() http.Handler {
	return s.corsMiddleware(s.router)
}

// routes defines all REST endpoints.
func (s *Server) routes() {
	s.handler.RegisterRoutes(s.router)
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// handleIndex serves the bundled frontend page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.opts.StaticDir, "index.html"))
}

// HTTPConfig contains tunables for the HTTP server.
type HTTPConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewHTTPServer creates *http.Server with the provided handler.
func NewHTTPServer(cfg HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
