package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/specdoc/internal/config"
	"github.com/dgallion1/specdoc/internal/render"
	"github.com/dgallion1/specdoc/internal/section"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for specdoc.
type Server struct {
	router chi.Router
	cache  *render.Cache
	rules  []section.ExclusionRule
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg config.Config, rules []section.ExclusionRule, log *slog.Logger) *Server {
	s := &Server{
		cache: render.NewCache(cfg.CacheEntries),
		rules: rules,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/spec", s.handleSpec)
	r.Get("/spec.txt", s.handleSpecText)
	r.Get("/api/outline", s.handleSpecOutline)

	// Upload endpoints, authenticated when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/outline", s.handleUploadOutline)
		r.Post("/api/render", s.handleUploadRender)
	})

	s.router = r
}

func (s *Server) renderer() *render.Renderer {
	return render.New(render.Options{
		Exclude:   s.rules,
		DingusURL: s.cfg.DingusURL,
	}, s.log)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
