package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	trmsql "github.com/avito-tech/go-transaction-manager/sql"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/app"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/address_put"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/healthcheck_head"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/login_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/logout_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/optimization_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/package_delivered_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/package_failed_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/packages_fetch_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/packages_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/ping_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/reorder_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/scan_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/session_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/status_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/sync_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/dotenv"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/httpclient"
	metrics_system "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/metrics"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/middlewares/graceful_shutdown"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/middlewares/metrics"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/middlewares/rate_limiter"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/middlewares/timeout"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/sqlitedb"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger/zap_adapter"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting driver-client daemon")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	db, err := sqlitedb.Open(ctx, log, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("local database: %w", err)
	}
	defer func() {
		err := db.Close()
		if err != nil {
			runLog.Error("failed to close local database",
				logger.NewField("error", err),
			)
		}
	}()

	httpClient := httpclient.New(&cfg.RouteAPI)

	businessApp, err := application.InitializeApplication(ctx, log, db, trmsql.DefaultCtxGetter, httpClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("control plane starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf("127.0.0.1:%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.Handle("/login", login_post.New(log, app.Controller)).Methods("POST")
	api.Handle("/logout", logout_post.New(log, app.Controller)).Methods("POST")

	api.Handle("/session", session_get.New(log, app.Controller)).Methods("GET")
	api.Handle("/sync/status", status_get.New(log, app.Controller)).Methods("GET")
	api.Handle("/sync", sync_post.New(log, app.Controller)).Methods("POST")

	api.Handle("/scan", scan_post.New(log, app.Controller)).Methods("POST")
	api.Handle("/reorder", reorder_post.New(log, app.Controller)).Methods("POST")
	api.Handle("/address/{id}", address_put.New(log, app.Controller)).Methods("PUT")
	api.Handle("/package/delivered", package_delivered_post.New(log, app.Controller)).Methods("POST")
	api.Handle("/package/failed", package_failed_post.New(log, app.Controller)).Methods("POST")
	api.Handle("/optimization", optimization_post.New(log, app.Controller)).Methods("POST")

	api.Handle("/packages", packages_get.New(log, app.Controller)).Methods("GET")
	api.Handle("/packages/fetch", packages_fetch_post.New(log, app.Controller)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
