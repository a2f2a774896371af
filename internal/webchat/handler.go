// Package webchat exposes the demo playback, chat assistant, section guide and
// contact form over HTTP and websockets.
package webchat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/nortedigital/pagebot/internal/chat"
	"github.com/nortedigital/pagebot/internal/contact"
	"github.com/nortedigital/pagebot/internal/guide"
	"github.com/nortedigital/pagebot/internal/observability/metrics"
	"github.com/nortedigital/pagebot/internal/playback"
	"github.com/nortedigital/pagebot/internal/render"
	"github.com/nortedigital/pagebot/internal/script"
	"github.com/nortedigital/pagebot/internal/whatsapp"
	"github.com/nortedigital/pagebot/pkg/logging"
)

// SessionHeader carries the chat session ID on REST calls.
const SessionHeader = "X-Session-Id"

// Config wires the handler's collaborators. Nil fields get defaults.
type Config struct {
	Sessions *chat.Registry
	Renderer *render.Renderer
	Guide    *guide.Guide
	Contact  *contact.Service
	Script   *script.Script
	Number   string
	Cooldown time.Duration
	Clock    playback.Clock
	Metrics  *metrics.ChatMetrics
}

// Handler serves the public site API.
type Handler struct {
	sessions *chat.Registry
	renderer *render.Renderer
	guide    *guide.Guide
	contact  *contact.Service
	script   *script.Script
	number   string
	cooldown time.Duration
	clock    playback.Clock
	metrics  *metrics.ChatMetrics
	logger   *logging.Logger
}

// NewHandler creates a handler.
func NewHandler(cfg Config, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Number == "" {
		cfg.Number = whatsapp.DefaultNumber
	}
	if cfg.Sessions == nil {
		cfg.Sessions = chat.NewRegistry(chat.Options{Number: cfg.Number}, logger)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.New()
	}
	if cfg.Guide == nil {
		cfg.Guide = guide.New()
	}
	if cfg.Contact == nil {
		cfg.Contact = contact.NewService(nil, contact.Config{Number: cfg.Number}, logger)
	}
	if cfg.Script == nil {
		cfg.Script = script.Demo()
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = playback.DefaultCooldown
	}
	if cfg.Clock == nil {
		cfg.Clock = playback.RealClock()
	}
	return &Handler{
		sessions: cfg.Sessions,
		renderer: cfg.Renderer,
		guide:    cfg.Guide,
		contact:  cfg.Contact,
		script:   cfg.Script,
		number:   cfg.Number,
		cooldown: cfg.Cooldown,
		clock:    cfg.Clock,
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// HandleWhatsAppLink returns a wa.me link for ?text=, defaulting to the
// generic contact message.
func (h *Handler) HandleWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		text = whatsapp.ContactMessage
	}
	link, err := whatsapp.Link(h.number, text)
	if err != nil {
		h.logger.Error("webchat: build whatsapp link", "error", err)
		http.Error(w, "invalid whatsapp number", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"link": link, "text": text})
}

// wait blocks for d on the handler clock unless ctx ends first.
func (h *Handler) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.clock.After(d):
		return nil
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
