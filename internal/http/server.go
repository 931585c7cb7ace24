// Package http exposes the home page, search and category report views as a
// JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finview/internal/core"
	"finview/internal/log"
	"finview/internal/middleware/ratelimit"
	"finview/internal/middleware/security"
	"finview/internal/middleware/trace"
	"finview/internal/services"
	"finview/internal/sheets"
)

// Ports consumed by the handlers.
type (
	HomeProvider interface {
		Home(ctx context.Context, ref string) (services.HomePage, error)
	}

	Searcher interface {
		Search(ctx context.Context, query string) ([]byte, error)
	}

	CategoryReporter interface {
		SpendingByCategory(ctx context.Context, category string, date any, fileName string) (services.CategoryReport, error)
	}
)

// Options wires the server's dependencies.
type Options struct {
	Home               HomeProvider
	Search             Searcher
	Report             CategoryReporter
	Ledger             sheets.LedgerReader
	Logger             *log.Logger
	RateLimitPerMinute int
}

type Server struct {
	http.Server
	home    HomeProvider
	search  Searcher
	report  CategoryReporter
	ledger  sheets.LedgerReader
	logger  *log.Logger
	limiter *ratelimit.Limiter

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	s := &Server{
		Server: http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		home:   opts.Home,
		search: opts.Search,
		report: opts.Report,
		ledger: opts.Ledger,
		logger: logger.WithComponent(log.ComponentHTTP),
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RateLimitPerMinute,
		}),
	}

	detector := security.NewDetector(logger)
	tracer := trace.NewMiddleware(logger, detector.ExtractClientIP)
	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())

	r := chi.NewRouter()
	r.Use(tracer.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(headers.Middleware)
	r.Use(detector.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, core.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		NewJSONResponse().Status(http.StatusMethodNotAllowed).
			JSON(map[string]string{"error": "method not allowed"}).Write(w)
	})

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limiter.Middleware(detector.ExtractClientIP, func(w http.ResponseWriter, _ *http.Request) {
			NewJSONResponse().Status(http.StatusTooManyRequests).
				JSON(map[string]string{"error": "rate limit exceeded"}).Write(w)
		}))
		r.Get("/home", s.handleHome)
		r.Get("/search", s.handleSearch)
		r.Get("/reports/category", s.handleCategoryReport)
	})

	s.Handler = r
	return s
}

// Shutdown stops the rate limiter and gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}
