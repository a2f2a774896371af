package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/nortedigital/pagebot/pkg/logging"
)

const (
	// DefaultFromName is the sender name used when none is configured.
	DefaultFromName = "Norte Digital"
	// DefaultCategory tags every site e-mail at the provider.
	DefaultCategory = "site-contact"
)

// ErrNotConfigured is returned by a sender that was never given credentials.
var ErrNotConfigured = errors.New("notify: sender not configured")

var mailTracer = otel.Tracer("pagebot.internal.notify")

// EmailSender delivers one e-mail. SendGrid, SES and the stub implement it.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage is an e-mail to the agency inbox.
type EmailMessage struct {
	To       string
	ToName   string
	ReplyTo  string
	Subject  string
	Body     string // plain text
	HTML     string // optional
	Category string // provider tag; DefaultCategory when empty
}

func (m EmailMessage) category() string {
	if c := strings.TrimSpace(m.Category); c != "" {
		return c
	}
	return DefaultCategory
}

func fromAddress(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// StubEmailSender logs instead of sending and keeps what it was given.
type StubEmailSender struct {
	logger *logging.Logger

	mu   sync.Mutex
	sent []EmailMessage
}

// NewStubEmailSender creates a sender for development and tests.
func NewStubEmailSender(logger *logging.Logger) *StubEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubEmailSender{logger: logger}
}

func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()
	s.logger.Info("stub email sender: message kept", "subject", msg.Subject, "category", msg.category())
	return nil
}

// Sent returns the messages passed to Send so far.
func (s *StubEmailSender) Sent() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EmailMessage(nil), s.sent...)
}

var _ EmailSender = (*StubEmailSender)(nil)
