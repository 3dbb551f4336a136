package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"kwagala/config"
	_ "kwagala/docs" // swagger spec
	"kwagala/infras/otel"
	"kwagala/infras/postgres"
	"kwagala/internal/handlers/health"
	"kwagala/shared/constant"
	"kwagala/shared/metrics"
	"kwagala/transport/http/middleware"
	"kwagala/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	swaggerDocURL     = "/swagger/doc.json"
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	AdminGate  middleware.AdminGate
	Metrics    *metrics.Metrics
	DB         *postgres.Connection
	Otel       otel.Otel

	state  atomic.Int32
	once   sync.Once
	mux    *chi.Mux
	server *http.Server
}

func New(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	gate middleware.AdminGate,
	m *metrics.Metrics,
	db *postgres.Connection,
	ot otel.Otel,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: app,
		AdminGate:  gate,
		Metrics:    m,
		DB:         db,
		Otel:       ot,
	}
}

// Serve blocks until SIGINT or SIGTERM, then drains the server.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-signals

	h.shutdown()
}

// Handler returns the routed handler without listening, for serverless entrypoints.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.mux
}

// Ready implements health.Readiness.
func (h *HTTP) Ready() bool {
	return ServerState(h.state.Load()) == ServerStateReady
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.RequestID, chiMiddleware.Recoverer)

	if h.Config.App.CORS.Enable {
		mux.Use(h.corsHandler())
	}

	mux.Use(
		h.Middleware.Tracing,
		h.Middleware.Metrics,
		h.Middleware.RateLimit(),
		h.AdminGate.Gate,
	)

	healthHandler := health.New(h, h.DB)
	healthHandler.Router(mux)

	mux.Handle("/metrics", h.Metrics.Handler())
	mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	h.Router.SetupRoutes(mux)

	h.mux = mux
}

func (h *HTTP) corsHandler() func(http.Handler) http.Handler {
	cfg := h.Config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   append(slices.Clone(cfg.AllowedHeaders), constant.RequestHeaderAdminPass, constant.RequestHeaderContentType),
		ExposedHeaders:   []string{constant.RequestHeaderRateLimit, constant.RequestHeaderRateLimitRemaining, constant.RequestHeaderRateLimitWindow, constant.RequestHeaderContentDisposition},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAgeSeconds,
	})
}

// shutdown fails health checks for the grace period so load balancers drain traffic,
// then gives in-flight requests the cleanup period to finish.
func (h *HTTP) shutdown() {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
	} else {
		log.Info().Msg("Received SIGTERM.")
	}

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server did not drain in time")
		}
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database connections")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
