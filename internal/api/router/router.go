package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/nortedigital/pagebot/internal/http/middleware"
	"github.com/nortedigital/pagebot/internal/webchat"
	"github.com/nortedigital/pagebot/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Site               *webchat.Handler
	MetricsHandler     http.Handler
	ContactLimiter     *httpmiddleware.RateLimiter
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.Site == nil {
		return r
	}
	site := cfg.Site

	r.Route("/api", func(api chi.Router) {
		// Websockets hijack the connection, so they stay outside the compressed group.
		api.Get("/playback/ws", site.HandlePlaybackStream)
		api.Get("/chat/ws", site.HandleChatStream)

		api.Group(func(rest chi.Router) {
			rest.Use(middleware.Compress(5))

			rest.Get("/script", site.HandleScript)
			rest.Get("/whatsapp/link", site.HandleWhatsAppLink)

			rest.Route("/chat", func(c chi.Router) {
				c.Post("/sessions", site.HandleCreateSession)
				c.Post("/message", site.HandleMessage)
				c.Post("/clear", site.HandleClear)
				c.Get("/history", site.HandleHistory)
				c.Get("/quick-replies", site.HandleQuickReplies)
			})

			rest.Route("/guide", func(g chi.Router) {
				g.Get("/start", site.HandleGuideStart)
				g.Get("/sections/{section}", site.HandleGuideSection)
				g.Post("/actions/{action}", site.HandleGuideAction)
			})

			if cfg.ContactLimiter != nil {
				rest.With(cfg.ContactLimiter.Middleware).Post("/contact", site.HandleContact)
			} else {
				rest.Post("/contact", site.HandleContact)
			}
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
