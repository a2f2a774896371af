package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nortedigital/pagebot/pkg/logging"
)

// DefaultEmailJSBaseURL is the public EmailJS REST endpoint.
const DefaultEmailJSBaseURL = "https://api.emailjs.com"

const emailJSSendPath = "/api/v1.0/email/send"

// ErrEmailJSNotConfigured is returned when service, template or public key is missing.
var ErrEmailJSNotConfigured = errors.New("notify: emailjs credentials missing")

var emailJSTracer = otel.Tracer("pagebot.internal.notify.emailjs")

// EmailJSConfig holds the browser-side EmailJS credentials.
type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
	Timeout    time.Duration
}

// Configured reports whether all three credentials are present.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSClient sends templated emails through the EmailJS REST API.
type EmailJSClient struct {
	cfg    EmailJSConfig
	http   *resty.Client
	logger *logging.Logger
}

// NewEmailJSClient creates a client. It does not validate credentials; Send does.
func NewEmailJSClient(cfg EmailJSConfig, logger *logging.Logger) *EmailJSClient {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultEmailJSBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &EmailJSClient{cfg: cfg, http: client, logger: logger}
}

// Configured reports whether Send can be attempted.
func (c *EmailJSClient) Configured() bool {
	return c != nil && c.cfg.Configured()
}

// Send posts the template parameters. Any non-2xx answer is an error.
func (c *EmailJSClient) Send(ctx context.Context, params map[string]string) error {
	ctx, span := emailJSTracer.Start(ctx, "notify.emailjs.send")
	defer span.End()

	if !c.Configured() {
		span.RecordError(ErrEmailJSNotConfigured)
		return ErrEmailJSNotConfigured
	}
	span.SetAttributes(
		attribute.String("pagebot.emailjs.service_id", c.cfg.ServiceID),
		attribute.String("pagebot.emailjs.template_id", c.cfg.TemplateID),
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(emailJSRequest{
			ServiceID:      c.cfg.ServiceID,
			TemplateID:     c.cfg.TemplateID,
			UserID:         c.cfg.PublicKey,
			TemplateParams: params,
		}).
		Post(emailJSSendPath)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("emailjs send failed", "error", err)
		return fmt.Errorf("notify: emailjs send failed: %w", err)
	}
	if resp.IsError() {
		err := fmt.Errorf("notify: emailjs returned status %d: %s", resp.StatusCode(), resp.String())
		span.RecordError(err)
		c.logger.Error("emailjs returned error status", "status", resp.StatusCode(), "body", resp.String())
		return err
	}

	c.logger.Info("email sent via emailjs", "template_id", c.cfg.TemplateID, "status", resp.StatusCode())
	return nil
}
