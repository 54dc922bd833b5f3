package internal

import (
	"context"
	"dsatrack/internal/controllers"
	"dsatrack/internal/persistence/interfaces"
	"dsatrack/internal/providers"
	"dsatrack/internal/structures"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server
	scheduler interfaces.SchedulerInterface
	conf      *structures.Config
	logger    providers.Logger
}

// NewHandler assembles the API routes behind the metrics middleware plus the
// health and metrics endpoints.
func NewHandler(healthController *controllers.HealthController, conf *structures.Config, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) http.Handler {
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Pattern(), route.Handler)
	}

	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)
	return mux
}

// NewApp restores the last snapshot and prepares the HTTP server.
func NewApp(handler http.Handler, scheduler interfaces.SchedulerInterface, conf *structures.Config, logger providers.Logger) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	if err := scheduler.Restore(); err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		scheduler: scheduler,
		conf:      conf,
		logger:    logger,
	}, nil
}

// Run serves until SIGINT/SIGTERM, then drains the server and writes a final snapshot.
func (a *App) Run() error {
	if err := a.scheduler.Init(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
		if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	a.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.WebServer.Shutdown(ctx); err != nil && runErr == nil {
		runErr = err
	}
	if err := a.scheduler.Persist(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr == nil {
		a.logger.Infof(providers.TypeApp, "gracefully stopped")
	}
	return runErr
}
