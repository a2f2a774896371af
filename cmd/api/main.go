package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nortedigital/pagebot/cmd/mainconfig"
	"github.com/nortedigital/pagebot/internal/api/router"
	"github.com/nortedigital/pagebot/internal/chat"
	appconfig "github.com/nortedigital/pagebot/internal/config"
	"github.com/nortedigital/pagebot/internal/contact"
	httpmiddleware "github.com/nortedigital/pagebot/internal/http/middleware"
	"github.com/nortedigital/pagebot/internal/notify"
	"github.com/nortedigital/pagebot/internal/observability/metrics"
	"github.com/nortedigital/pagebot/internal/webchat"
	"github.com/nortedigital/pagebot/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting pagebot API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"contact_relay", cfg.ContactRelay,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsHandler, chatMetrics := setupMetrics(cfg.MetricsEnabled)

	relay := setupContactRelay(ctx, cfg, logger)
	contactService := contact.NewService(relay, contact.Config{
		Inbox:  cfg.ContactInbox,
		Number: cfg.WhatsAppNumber,
	}, logger)

	sessions := chat.NewRegistry(chat.Options{Number: cfg.WhatsAppNumber}, logger).WithTTL(cfg.ChatSessionTTL)
	go sessions.Run(ctx)

	limiter := httpmiddleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateBurst)
	go limiter.Run(ctx)

	site := webchat.NewHandler(webchat.Config{
		Sessions: sessions,
		Contact:  contactService,
		Number:   cfg.WhatsAppNumber,
		Cooldown: cfg.PlaybackCooldown,
		Metrics:  chatMetrics,
	}, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		Site:               site,
		MetricsHandler:     metricsHandler,
		ContactLimiter:     limiter,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// No WriteTimeout: its deadline would outlive the websocket hijack.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	// Cancelling the base context ends open playback and chat streams.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func setupMetrics(enabled bool) (http.Handler, *metrics.ChatMetrics) {
	if !enabled {
		return nil, nil
	}
	reg := prometheus.NewRegistry()
	chatMetrics := metrics.NewChatMetrics(reg)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), chatMetrics
}

// setupContactRelay picks the contact delivery channel from CONTACT_RELAY.
// Anything missing credentials degrades to an unconfigured relay so the site
// falls back to WhatsApp.
func setupContactRelay(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) contact.Relay {
	switch cfg.ContactRelay {
	case appconfig.RelaySendGrid:
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			logger.Warn("sendgrid relay selected without SENDGRID_API_KEY")
			return nil
		}
		return contact.NewMailRelay(appconfig.RelaySendGrid, sender, cfg.ContactInbox)

	case appconfig.RelaySES:
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			return nil
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			logger.Warn("ses relay selected without SES_FROM_EMAIL")
			return nil
		}
		return contact.NewMailRelay(appconfig.RelaySES, sender, cfg.ContactInbox)

	case appconfig.RelayStub:
		return contact.NewMailRelay(appconfig.RelayStub, notify.NewStubEmailSender(logger), cfg.ContactInbox)

	default:
		return contact.EmailJSRelay{Client: notify.NewEmailJSClient(notify.EmailJSConfig{
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			BaseURL:    cfg.EmailJSBaseURL,
		}, logger)}
	}
}
