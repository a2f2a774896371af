package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/nortedigital/pagebot/internal/notify"
)

// Relay delivers template parameters somewhere a human will read them.
type Relay interface {
	Name() string
	// Configured is false when credentials are missing; Deliver is then never called.
	Configured() bool
	Deliver(ctx context.Context, params map[string]string) error
}

// EmailJSRelay sends through an EmailJS template.
type EmailJSRelay struct {
	Client *notify.EmailJSClient
}

func (r EmailJSRelay) Name() string { return "emailjs" }

func (r EmailJSRelay) Configured() bool { return r.Client.Configured() }

func (r EmailJSRelay) Deliver(ctx context.Context, params map[string]string) error {
	return r.Client.Send(ctx, params)
}

// MailRelay formats the submission as a plain e-mail to the agency inbox and
// hands it to any notify.EmailSender.
type MailRelay struct {
	name   string
	sender notify.EmailSender
	inbox  string
}

// NewMailRelay returns a relay named name. A nil sender or empty inbox leaves
// it unconfigured.
func NewMailRelay(name string, sender notify.EmailSender, inbox string) *MailRelay {
	return &MailRelay{name: name, sender: sender, inbox: inbox}
}

func (r *MailRelay) Name() string { return r.name }

func (r *MailRelay) Configured() bool {
	return r != nil && r.sender != nil && r.inbox != ""
}

func (r *MailRelay) Deliver(ctx context.Context, params map[string]string) error {
	msg := notify.EmailMessage{
		To:      r.inbox,
		ReplyTo: params["reply_to"],
		Subject: fmt.Sprintf("Novo contato pelo site: %s", params["name"]),
		Body:    formatBody(params),
	}
	if err := r.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("contact: %s relay: %w", r.name, err)
	}
	return nil
}

func formatBody(params map[string]string) string {
	var b strings.Builder
	fields := []struct{ label, key string }{
		{"Nome", "name"},
		{"Empresa", "company"},
		{"Email", "email"},
		{"Telefone", "phone"},
		{"Data", "date"},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, params[f.key])
	}
	fmt.Fprintf(&b, "\nMensagem:\n%s\n", params["message"])
	return b.String()
}

type unconfiguredRelay struct{}

func (unconfiguredRelay) Name() string     { return "none" }
func (unconfiguredRelay) Configured() bool { return false }
func (unconfiguredRelay) Deliver(context.Context, map[string]string) error {
	return fmt.Errorf("contact: no relay configured")
}
