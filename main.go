//
// ARTICLES
// ========
// A REST service over a single "articles" table.
//
// Also check the generated route docs by passing the -routes flag:
// `go run . -routes`
//
// Boot the server:
// ----------------
// $ ARTICLES_DATABASE_URL=postgres://localhost/articles go run .
//
// Without ARTICLES_DATABASE_URL the articles live in memory.
//
// Client requests:
// ----------------
// $ curl http://localhost:8000/
// Hello, world!
//
// $ curl -X POST -d '{"title":"awesomeness","content":"...","style":"News"}' http://localhost:8000/articles
// {"id":1,"title":"awesomeness","style":"News","content":"...","date_published":"2019-07-03T12:00:00Z"}
//
// $ curl http://localhost:8000/articles/1
// {"id":1,"title":"awesomeness","style":"News","content":"...","date_published":"2019-07-03T12:00:00Z"}
//
// $ curl -X PATCH -d '{"title":"more awesomeness"}' http://localhost:8000/articles/1
//
// $ curl -X DELETE http://localhost:8000/articles/1
//
// $ curl http://localhost:8000/articles/1
// {"error":{"message":"Article doesn't exist"}}
//
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"go.opentelemetry.io/otel/metric/global"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/database"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

const ServiceName = "articles"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

type App struct {
	logger      *zap.Logger
	sugarLogger *zap.SugaredLogger
	config      *config.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ServiceName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		routes   = flag.Bool("routes", false, "Generate router documentation")
		addr     = flag.String("addr", cfg.Addr, "application port")
		diagAddr = flag.String("diag_addr", cfg.DiagAddr, "diag port")
	)

	flag.Parse()

	cfg.Addr, cfg.DiagAddr = *addr, *diagAddr

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() // nolint // flushes buffer, if any

	a := &App{
		logger:      logger,
		sugarLogger: logger.Sugar(),
		config:      cfg,
	}

	// Passing -routes to the program will generate docs for the router
	// without touching the database.
	if *routes {
		fmt.Println(a.routesDoc())

		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	articles, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	exporter, err := newPrometheusExporter()
	if err != nil {
		return fmt.Errorf("failed to initialize prometheus exporter: %w", err)
	}

	h := article.NewHandler(articles, logger, cfg.Production())
	r := a.newRouter(h, newMetrics(global.Meter(ServiceName)))

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	return a.serve(ctx, []*http.Server{
		{Addr: cfg.Addr, Handler: r},
		{Addr: cfg.DiagAddr, Handler: diagRouter},
	})
}

// routesDoc renders the route table of a router backed by a throwaway
// in-memory store.
func (a *App) routesDoc() string {
	h := article.NewHandler(store.NewMemory(), a.logger, a.config.Production())
	r := a.newRouter(h, newMetrics(global.Meter(ServiceName)))

	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/SergeyParamoshkin/articles",
		Intro:       "Routes of the articles REST service.",
	})
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// openStore picks Postgres when a database url is configured and the
// in-memory store otherwise.
func (a *App) openStore(ctx context.Context) (store.Articles, func(), error) {
	if a.config.DatabaseURL == "" {
		a.sugarLogger.Warnw("no database configured, articles are kept in memory")

		return store.NewMemory(), func() {}, nil
	}

	pool, err := database.New(ctx, a.config.DatabaseURL, a.logger, !a.config.Production())
	if err != nil {
		return nil, nil, err
	}

	return store.NewPostgres(pool), pool.Close, nil
}

func (a *App) newRouter(h *article.Handler, m *metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(m.Middleware)
	r.Use(h.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("Hello, world!")); err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())
		logger.Debugw("ping")
		if _, err := w.Write([]byte("pong")); err != nil {
			logger.Errorw(err.Error())
		}
	})

	// RESTy routes for "articles" resource
	r.Mount("/articles", h.Routes())

	return r
}

// serve runs every server until ctx is done or one of them fails, then
// shuts all of them down.
func (a *App) serve(ctx context.Context, servers []*http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			a.sugarLogger.Infow("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s: %w", srv.Addr, err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		a.sugarLogger.Infow("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})

	return g.Wait()
}
