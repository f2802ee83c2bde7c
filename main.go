package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/securelog/securelog/config"
	"github.com/securelog/securelog/controllers"
	"github.com/securelog/securelog/database"
	"github.com/securelog/securelog/logger"
	"github.com/securelog/securelog/metrics"
	appmiddleware "github.com/securelog/securelog/middleware"
	"github.com/securelog/securelog/repositories"
	"github.com/securelog/securelog/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, zl, metrics.New(reg))
	ctrl := controllers.NewControllers(srvs, db, zl)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           setupRouter(ctrl, cfg, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zl.Info("securelog starting",
		zap.String("addr", srv.Addr),
		zap.String("database", string(db.Dialect)),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg config.Config, gatherer prometheus.Gatherer) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(appmiddleware.CORS())
	r.Use(appmiddleware.ClientAddress(cfg.TrustProxyHeaders))

	r.Get("/", ctrl.Home.Index)
	r.Get("/health", ctrl.Home.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/encrypt", ctrl.Cipher.Encrypt)
		r.Post("/decrypt", ctrl.Cipher.Decrypt)
		r.Get("/logs", ctrl.Audit.Index)
	})

	return r
}
