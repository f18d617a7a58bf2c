package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/servekit/handler"
	"github.com/dmitrymomot/servekit/pkg/binder"
	"github.com/dmitrymomot/servekit/pkg/config"
	"github.com/dmitrymomot/servekit/pkg/httpserver"
	"github.com/dmitrymomot/servekit/pkg/idgen"
	"github.com/dmitrymomot/servekit/pkg/logger"
	"github.com/dmitrymomot/servekit/pkg/mongo"
	"github.com/dmitrymomot/servekit/pkg/opensearch"
	"github.com/dmitrymomot/servekit/pkg/pg"
	"github.com/dmitrymomot/servekit/pkg/redis"
	"github.com/dmitrymomot/servekit/pkg/requestid"
	"github.com/dmitrymomot/servekit/pkg/requestlog"
)

// ErrInit is joined with the first failing init hook error.
var ErrInit = errors.New("application init failed")

// InitHook prepares a dependency before the server starts listening.
type InitHook func(ctx context.Context) error

// App is the HTTP application: a chi router behind the request pipeline.
type App struct {
	cfg          config.Config
	log          *slog.Logger
	router       chi.Router
	errorHandler handler.ErrorHandler
	initHooks    []InitHook
	serverOpts   []httpserver.Option

	mu        sync.RWMutex
	checks    []httpserver.Check
	closers   []func()
	closeOnce sync.Once
}

// Option configures an App.
type Option func(*App)

// WithRoutes registers routes on the router after the pipeline is installed.
// fn receives the app's error handler for use with handler.Wrap.
func WithRoutes(fn func(r chi.Router, eh handler.ErrorHandler)) Option {
	return func(a *App) { fn(a.router, a.errorHandler) }
}

// WithInitHook adds a hook run by Init.
func WithInitHook(h InitHook) Option {
	return func(a *App) { a.initHooks = append(a.initHooks, h) }
}

// WithServerOptions passes extra options to the HTTP server built by Run.
func WithServerOptions(opts ...httpserver.Option) Option {
	return func(a *App) { a.serverOpts = append(a.serverOpts, opts...) }
}

// New builds the application router.
//
// Every request passes, in order, through request id assignment, request
// audit logging, body parsing and panic recovery before reaching a route.
// Unmatched paths and methods answer with the JSON 404 body.
func New(cfg config.Config, log *slog.Logger, opts ...Option) *App {
	if log == nil {
		log = logger.Default()
	}
	eh := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(log, requestid.WithGenerator(idgen.FromName(cfg.RequestID))),
		requestlog.Middleware(log),
		binder.Middleware(eh),
		handler.Recoverer(eh),
	)
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	a := &App{
		cfg:          cfg,
		log:          log,
		router:       r,
		errorHandler: eh,
	}
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", a.ready)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// ErrorHandler returns the handler used for errors and recovered panics,
// for use with handler.Wrap in routes.
func (a *App) ErrorHandler() handler.ErrorHandler {
	return a.errorHandler
}

// Init opens the configured readiness dependencies, then runs the init hooks
// concurrently and waits for all of them. The context passed to the hooks is
// cancelled on the first failure.
func (a *App) Init(ctx context.Context) error {
	if err := a.openDependencies(ctx); err != nil {
		return errors.Join(ErrInit, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, h := range a.initHooks {
		g.Go(func() error { return h(ctx) })
	}
	if err := g.Wait(); err != nil {
		return errors.Join(ErrInit, err)
	}
	return nil
}

// Run serves the application on the configured host and port until ctx is
// cancelled or the process receives SIGINT or SIGTERM.
func (a *App) Run(ctx context.Context) error {
	opts := append([]httpserver.Option{httpserver.WithLogger(a.log)}, a.serverOpts...)
	opts = append(opts, httpserver.WithStopHook(func(*slog.Logger) { a.Close() }))
	srv := httpserver.NewFromConfig(a.cfg.Addr(), a.cfg.HTTP, opts...)
	return srv.Run(ctx, a)
}

// Close releases the readiness dependencies opened by Init.
// Run calls it after the server has drained.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for _, c := range a.closers {
			c()
		}
		a.closers = nil
		a.checks = nil
	})
}

func (a *App) openDependencies(ctx context.Context) error {
	deps := a.cfg.Readiness

	var (
		checks  []httpserver.Check
		closers []func()
	)
	fail := func(err error) error {
		for _, c := range closers {
			c()
		}
		return err
	}

	if deps.Postgres.Enabled() {
		pool, err := pg.Open(ctx, deps.Postgres)
		if err != nil {
			return fail(err)
		}
		checks = append(checks, pg.Healthcheck(pool, deps.Postgres.PingTimeout))
		closers = append(closers, pool.Close)
	}
	if deps.Redis.Enabled() {
		client, err := redis.Open(deps.Redis)
		if err != nil {
			return fail(err)
		}
		checks = append(checks, redis.Healthcheck(client, deps.Redis.PingTimeout))
		closers = append(closers, func() { _ = client.Close() })
	}
	if deps.Mongo.Enabled() {
		client, err := mongo.Open(deps.Mongo)
		if err != nil {
			return fail(err)
		}
		checks = append(checks, mongo.Healthcheck(client, deps.Mongo.PingTimeout))
		closers = append(closers, func() { _ = mongo.Close(context.Background(), client) })
	}
	if deps.OpenSearch.Enabled() {
		client, err := opensearch.Open(deps.OpenSearch)
		if err != nil {
			return fail(err)
		}
		checks = append(checks, opensearch.Healthcheck(client, deps.OpenSearch.PingTimeout))
	}

	a.mu.Lock()
	a.checks = append(a.checks, checks...)
	a.closers = append(a.closers, closers...)
	a.mu.Unlock()
	return nil
}

// ready answers the readiness probe. Without dependencies the app is ready
// as soon as it serves.
func (a *App) ready(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	checks := append([]httpserver.Check{func(context.Context) error { return nil }}, a.checks...)
	a.mu.RUnlock()
	httpserver.HealthCheckHandler(requestid.Logger(r.Context(), a.log), checks...)(w, r)
}
