// Package mockapi is an in-process REST backend serving dashboard items,
// form schemas and debug endpoints that fail on purpose.
package mockapi

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/wintryx/progressmaker/pkg/dashboard"
	"github.com/wintryx/progressmaker/pkg/logger"
)

const DefaultBasePath = "/api"

// API holds the backend data. It is safe for concurrent use.
type API struct {
	basePath string
	latency  time.Duration
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string

	mu      sync.RWMutex
	items   []dashboard.ItemDTO
	schemas map[string]schema
}

type Option func(*API)

// WithBasePath mounts the routes under path. Empty means the root.
func WithBasePath(path string) Option {
	return func(a *API) {
		a.basePath = "/" + strings.Trim(path, "/")
	}
}

// WithLatency delays every response by d.
func WithLatency(d time.Duration) Option {
	return func(a *API) {
		a.latency = max(d, 0)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock replaces time.Now for upload timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		if now != nil {
			a.now = now
		}
	}
}

// WithItems replaces the seeded dashboard items.
func WithItems(items []dashboard.ItemDTO) Option {
	return func(a *API) {
		a.items = append([]dashboard.ItemDTO(nil), items...)
	}
}

// New creates the API with the built-in data set.
func New(opts ...Option) (*API, error) {
	schemas, err := loadSchemas(schemaFS)
	if err != nil {
		return nil, err
	}

	a := &API{
		basePath: DefaultBasePath,
		logger:   slog.Default(),
		now:      time.Now,
		newID:    uuid.NewString,
		items:    seedItems(),
		schemas:  schemas,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("mockapi"))
	return a, nil
}

// BasePath is the prefix all routes are mounted under.
func (a *API) BasePath() string {
	if a.basePath == "/" {
		return ""
	}
	return a.basePath
}

// Handler returns the router serving all endpoints.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)
	r.Use(delay(a.latency))
	r.NotFound(a.handle(a.notFound))

	routes := func(r chi.Router) {
		r.Route("/dashboard/items", func(r chi.Router) {
			r.Get("/", a.handle(a.listItems))
			r.Get("/{id}", a.handle(a.getItem))
		})
		r.Route("/forms/{id}", func(r chi.Router) {
			r.Get("/", a.handle(a.getForm))
			r.Post("/submit", a.handle(a.submitForm))
		})
		r.Post("/upload", a.handle(a.upload))
		r.Route("/debug", func(r chi.Router) {
			r.Get("/error", a.handle(a.debugError))
			r.Get("/unauthorized", a.handle(a.debugUnauthorized))
			r.Get("/success", a.handle(a.debugSuccess))
		})
	}

	if base := a.BasePath(); base != "" {
		r.Route(base, routes)
	} else {
		routes(r)
	}
	return r
}

func (a *API) handle(fn func(r *http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); err != nil {
			a.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to render response",
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
		}
	}
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.LogAttrs(r.Context(), slog.LevelDebug, "mock request",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Status(ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// delay holds every request for d, giving up when the client goes away.
func delay(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-r.Context().Done():
				return
			case <-timer.C:
			}
			next.ServeHTTP(w, r)
		})
	}
}
