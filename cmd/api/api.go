package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/browse"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/storage"
	"github.com/Abdulllah321/sports-landing-sub001/internal/ratelimiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	catalogs    map[string]browse.Catalog
	logger      *zap.SugaredLogger
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	dataSource  string
	db          dbConfig
	redis       redisConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

type redisConfig struct {
	addr     string
	password string
	db       int
	ttl      time.Duration
}

func newApplication(cfg config, store *storage.Container, logger *zap.SugaredLogger, limiter ratelimiter.Limiter) *application {
	app := &application{
		config:      cfg,
		store:       store,
		catalogs:    make(map[string]browse.Catalog),
		logger:      logger,
		rateLimiter: limiter,
	}
	for _, c := range store.Catalogs() {
		app.catalogs[c.Kind()] = c
	}
	return app
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		r.With(app.BasicAuthMiddleware()).Handle("/metrics", promhttp.Handler())

		// GET /v1/facilities?search=arena&category=Indoor&date=2024-03-01&time_slot=10:00&page=1
		r.Route("/{kind}", func(r chi.Router) {
			r.Use(app.catalogContextMiddleware)
			r.Get("/", app.browseCatalogHandler)
			r.Post("/", app.createRecordHandler)
			r.Get("/options/time-slots", app.timeSlotsHandler)

			r.Route("/{recordID}", func(r chi.Router) {
				r.Get("/", app.getRecordHandler)
				r.Patch("/status", app.updateRecordStatusHandler)
				r.Delete("/", app.deleteRecordHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env, "source", app.store.Backend())

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
