package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/reposcore/pkg/domain/interfaces"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/utils/metrics"
	"github.com/m-mizutani/reposcore/pkg/utils/safe"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON or a fixed text
	safe.Write(w, body)
}

type config struct {
	metrics *metrics.Recorder
}

type Option func(*config)

// WithMetrics enables request metrics and exposes them at GET /metrics
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(cfg *config) {
		cfg.metrics = recorder
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess(cfg.metrics))
	r.Use(recoverPanic)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, model.NewNotFoundError("", model.WithDetails(map[string]any{"path": r.URL.Path})))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, model.NewNotFoundError("", model.WithDetails(map[string]any{
			"path":   r.URL.Path,
			"method": r.Method,
		})))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics.Handler())
	}

	r.Get("/searchRepositories", handleSearch(uc.SearchRepositories))
	r.Get("/aggregateRepositories", handleSearch(uc.AggregateRepositories))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
