package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/dormeats/docs"
	"github.com/Beka01247/dormeats/internal/auth"
	"github.com/Beka01247/dormeats/internal/metrics"
	"github.com/Beka01247/dormeats/internal/queue"
	"github.com/Beka01247/dormeats/internal/ratelimiter"
	"github.com/Beka01247/dormeats/internal/service"
	"github.com/Beka01247/dormeats/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// database is the part of *mongo.Storage the HTTP layer needs.
type database interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// docsURL is where the swagger UI fetches the spec, relative to the site root.
const docsURL = "/api/v1/swagger/doc.json"

type application struct {
	config           config
	logger           *zap.SugaredLogger
	rateLimiter      ratelimiter.Limiter
	authenticator    *auth.Authenticator
	metrics          *metrics.Metrics
	storage          database
	broker           queue.Broker
	storeService     *service.StoreService
	foodService      *service.FoodService
	dashboardService *service.DashboardService
	importService    *service.ImportService
	sessionService   *service.SessionService
	statusWorker     *worker.StoreStatusWorker
	importWorker     *worker.FoodImportWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	frontendURL string
	corsOrigins []string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	s3          s3Config
	auth        authConfig
	redisAddr   string
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type s3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	PublicURL string
}

type authConfig struct {
	Secret string
	Issuer string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}
	if app.config.rateLimiter.Enabled {
		r.Use(app.RateLimiterMiddleware)
	}

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)

			r.Get("/me", app.getSessionHandler)

			r.Route("/stores", func(r chi.Router) {
				r.With(app.requireRole(auth.RoleSeller)).Post("/", app.registerStoreHandler)
				r.With(app.requireRole(auth.RoleSeller)).Get("/me", app.getMyStoreHandler)

				r.Route("/{store_id}", func(r chi.Router) {
					r.Get("/", app.getStoreHandler)
					r.Patch("/", app.updateStoreHandler)
					r.Post("/image", app.uploadStoreImageHandler)
					r.Get("/qr", app.getStoreQRHandler)
					r.Get("/foods", app.listFoodsHandler)
					r.Post("/foods", app.createFoodHandler)
					r.Post("/imports", app.createImportTaskHandler)
				})
			})

			r.Get("/imports/{task_id}", app.getImportTaskHandler)

			r.Route("/foods/{food_id}", func(r chi.Router) {
				r.Get("/", app.getFoodHandler)
				r.Patch("/", app.updateFoodHandler)
				r.Delete("/", app.deleteFoodHandler)
				r.Patch("/availability", app.setFoodAvailabilityHandler)
				r.Post("/image", app.uploadFoodImageHandler)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(app.requireRole(auth.RoleAdmin))

				r.Get("/dashboard", app.getDashboardHandler)
				r.Put("/dashboard/stats", app.recordStatsHandler)
				r.Put("/dashboard/top-stores", app.replaceTopStoresHandler)

				r.Get("/stores", app.listStoresByStatusHandler)
				r.Patch("/stores/{store_id}/status", app.updateStoreStatusHandler)
				r.Get("/stores/{store_id}/audit", app.getStoreAuditHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "DormEats"
	docs.SwaggerInfo.Description = "API for the DormEats dorm food delivery app"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.statusWorker != nil {
		if err := app.statusWorker.Start(); err != nil {
			return fmt.Errorf("failed to start store status worker: %w", err)
		}
	}
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start food import worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.statusWorker != nil {
			app.statusWorker.Stop()
		}
		if app.importWorker != nil {
			app.importWorker.Stop()
		}

		err := srv.Shutdown(ctx)

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- err
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

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
