// Package contact handles the site's contact form: it validates the
// submission, relays it by e-mail and falls back to WhatsApp when it cannot.
package contact

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nortedigital/pagebot/internal/whatsapp"
	"github.com/nortedigital/pagebot/pkg/logging"
)

// DefaultInbox receives contact form e-mails.
const DefaultInbox = "nortedigital2026@gmail.com"

const (
	NoticeMissingFields = "Por favor, preencha nome, email e mensagem"
	NoticeUnconfigured  = "Configuração de email não encontrada. Entre em contato pelo WhatsApp."
	NoticeFailed        = "Erro ao enviar mensagem. Tente novamente ou entre em contato por WhatsApp."
	NoticeSent          = "Mensagem enviada com sucesso! Entraremos em contato em até 24h."

	// FallbackDelay is how long the client waits before opening WhatsApp after
	// a relay failure.
	FallbackDelay = 2 * time.Second
	// SentResetAfter is how long the "sent" state is shown.
	SentResetAfter = 5 * time.Second

	dateLayout = "02/01/2006 15:04:05"
)

var contactTracer = otel.Tracer("pagebot.internal.contact")

// Submission is what the visitor typed. Company and phone are optional.
type Submission struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Status classifies an Outcome.
type Status string

const (
	StatusInvalid      Status = "invalid"
	StatusUnconfigured Status = "unconfigured"
	StatusFailed       Status = "failed"
	StatusSent         Status = "sent"
)

// Outcome tells the client what to show. Every outcome is final; nothing is
// retried.
type Outcome struct {
	Status        Status        `json:"status"`
	Notice        string        `json:"notice"`
	FallbackLink  string        `json:"fallback_link,omitempty"`
	FallbackDelay time.Duration `json:"-"`
	ClearForm     bool          `json:"clear_form"`
	ResetAfter    time.Duration `json:"-"`
}

// OK reports whether the message was relayed.
func (o Outcome) OK() bool { return o.Status == StatusSent }

// Config holds the service settings.
type Config struct {
	Inbox    string
	Number   string
	Location *time.Location
}

// Service processes contact submissions.
type Service struct {
	relay    Relay
	inbox    string
	number   string
	location *time.Location
	now      func() time.Time
	logger   *logging.Logger
}

// NewService wires a relay. A nil relay behaves as an unconfigured one.
func NewService(relay Relay, cfg Config, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if relay == nil {
		relay = unconfiguredRelay{}
	}
	if cfg.Inbox == "" {
		cfg.Inbox = DefaultInbox
	}
	if cfg.Number == "" {
		cfg.Number = whatsapp.DefaultNumber
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Service{
		relay:    relay,
		inbox:    cfg.Inbox,
		number:   cfg.Number,
		location: cfg.Location,
		now:      time.Now,
		logger:   logger,
	}
}

// Submit validates sub and relays it.
func (s *Service) Submit(ctx context.Context, sub Submission) Outcome {
	ctx, span := contactTracer.Start(ctx, "contact.submit")
	defer span.End()

	sub = sub.trimmed()
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		span.SetAttributes(attribute.String("pagebot.contact.status", string(StatusInvalid)))
		return Outcome{Status: StatusInvalid, Notice: NoticeMissingFields}
	}

	if !s.relay.Configured() {
		s.logger.Error("contact relay credentials missing", "relay", s.relay.Name())
		span.SetAttributes(attribute.String("pagebot.contact.status", string(StatusUnconfigured)))
		return Outcome{
			Status:       StatusUnconfigured,
			Notice:       NoticeUnconfigured,
			FallbackLink: s.FallbackLink(sub),
		}
	}

	span.SetAttributes(attribute.String("pagebot.contact.relay", s.relay.Name()))
	if err := s.relay.Deliver(ctx, s.Params(sub)); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("pagebot.contact.status", string(StatusFailed)))
		s.logger.Error("contact relay failed",
			"relay", s.relay.Name(),
			"sender", Fingerprint(sub.Email),
			"preview", preview(sub.Message),
			"error", err,
		)
		return Outcome{
			Status:        StatusFailed,
			Notice:        NoticeFailed,
			FallbackLink:  s.FallbackLink(sub),
			FallbackDelay: FallbackDelay,
		}
	}

	span.SetAttributes(attribute.String("pagebot.contact.status", string(StatusSent)))
	s.logger.Info("contact message relayed", "relay", s.relay.Name(), "sender", Fingerprint(sub.Email))
	return Outcome{
		Status:     StatusSent,
		Notice:     NoticeSent,
		ClearForm:  true,
		ResetAfter: SentResetAfter,
	}
}

// Params builds the e-mail template parameters for sub.
func (s *Service) Params(sub Submission) map[string]string {
	return map[string]string{
		"name":     sub.Name,
		"company":  sub.Company,
		"email":    sub.Email,
		"phone":    sub.Phone,
		"message":  sub.Message,
		"date":     s.now().In(s.location).Format(dateLayout),
		"to_email": s.inbox,
		"reply_to": sub.Email,
	}
}

// FallbackLink is the WhatsApp link carrying the form contents.
func (s *Service) FallbackLink(sub Submission) string {
	link, err := whatsapp.Link(s.number, whatsapp.ContactFormMessage(whatsapp.ContactForm{
		Name:    sub.Name,
		Company: sub.Company,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Message: sub.Message,
	}))
	if err != nil {
		s.logger.Error("contact fallback link failed", "error", err)
		return whatsapp.MustLink(whatsapp.DefaultNumber, whatsapp.ContactMessage)
	}
	return link
}

func (sub Submission) trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(sub.Name),
		Company: strings.TrimSpace(sub.Company),
		Email:   strings.TrimSpace(sub.Email),
		Phone:   strings.TrimSpace(sub.Phone),
		Message: strings.TrimSpace(sub.Message),
	}
}
