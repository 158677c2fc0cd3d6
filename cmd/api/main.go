package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bf-tradehook/internal/blofin"
	"bf-tradehook/internal/config"
	"bf-tradehook/internal/events"
	"bf-tradehook/internal/health"
	"bf-tradehook/internal/httpserver"
	"bf-tradehook/internal/journal"
	"bf-tradehook/internal/logging"
	"bf-tradehook/internal/notify"
	"bf-tradehook/internal/relay"
)

func main() {
	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}
	if cfg.WebhookSecret == "" {
		logger.Warn("TRADINGVIEW_WEBHOOK_SECRET is not set; /webhook accepts unauthenticated alerts")
	}
	if !cfg.HasExchangeCredentials() {
		logger.Warn("BloFin API credentials are incomplete; order submission will fail until they are set")
	}

	ctx := context.Background()

	client := blofin.NewClient(cfg)
	defer client.Close()

	bus := events.NewBus()
	rl := relay.New(client, cfg.WebhookSecret, logger).WithBus(bus)

	if cfg.NotifyURL != "" {
		rl = rl.WithNotifier(notify.New(cfg.NotifyURL))
		logger.WithField("url", cfg.NotifyURL).Info("notifications enabled")
	}
	if cfg.DBDSN != "" {
		pool, err := journal.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		store := journal.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal(err)
		}
		rl = rl.WithRecorder(store)
		logger.Info("relay journal enabled")
	}

	router := httpserver.NewRouter(httpserver.RouterDeps{
		WebhookHandler: httpserver.NewWebhookHandler(rl, logger),
		HealthHandler:  health.NewHandler(time.Now()),
		EventsWS:       httpserver.NewEventsWSHandler(bus, cfg.WebSocketOrigin, logger),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	logger.WithField("addr", cfg.HTTPAddr).Info("trading webhook listening")
	logger.WithField("base_url", cfg.BlofinBaseURL).Info("exchange endpoint configured")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal(err)
	}
}
