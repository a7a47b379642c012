// Package api implements the blockbuster HTTP surface: the interactive
// prediction page and a small JSON API over the scoring engine.
package api

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/blockbuster/blockbuster/internal/observability"
	"github.com/blockbuster/blockbuster/pkg/concept"
	"github.com/blockbuster/blockbuster/pkg/config"
	"github.com/blockbuster/blockbuster/pkg/scoring"
	"github.com/blockbuster/blockbuster/pkg/surface"
)

// Handler serves the prediction page and API. It holds no per-request or
// per-user state; the engine is immutable.
type Handler struct {
	engine   *scoring.Engine
	weights  scoring.Weights
	html     *surface.HTMLRenderer
	page     *template.Template
	validate *validator.Validate
	defaults concept.Concept
	server   config.ServerConfig
	logger   *zap.Logger
}

// NewHandler creates a Handler from config. A nil logger discards logs.
func NewHandler(cfg *config.Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:   scoring.NewDefaultEngine(),
		weights:  scoring.Defaults(),
		html:     surface.NewHTMLRenderer(),
		page:     template.Must(template.New("page").Funcs(pageFuncs).Parse(pageTemplate)),
		validate: newValidator(),
		defaults: cfg.Defaults,
		server:   cfg.Server,
		logger:   logger,
	}
}

// Routes builds the router with the standard middleware stack.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	if d := h.requestTimeout(); d > 0 {
		r.Use(middleware.Timeout(d))
	}
	r.Use(CORS(h.server.CORSOrigin))

	r.Get("/healthz", h.handleHealth)
	r.Get("/", h.handlePage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(h.server.APIKey))
		r.Get("/options", h.handleOptions)
		r.Post("/predict", h.handlePredict)
	})

	return r
}

// requestTimeout bounds handler work by the server write timeout.
// Zero disables the bound.
func (h *Handler) requestTimeout() time.Duration {
	return h.server.WriteTimeoutDuration()
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
