// Package leadcapture runs the three-question budget flow that ends in a
// WhatsApp handoff carrying the visitor's answers.
package leadcapture

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nortedigital/pagebot/internal/responder"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

// State is the flow position.
type State string

const (
	StateIdle            State = "idle"
	StateAwaitingName    State = "awaiting_name"
	StateAwaitingProject State = "awaiting_project"
	StateAwaitingNeed    State = "awaiting_need"
	StateComplete        State = "complete"
)

// HandoffDelay is how long the client waits before opening the handoff link.
const HandoffDelay = time.Second

var (
	ErrNotActive  = errors.New("leadcapture: flow not active")
	ErrEmptyInput = errors.New("leadcapture: empty input")
)

const (
	projectPrompt = "**Excelente!**\n\nAgora descreva rapidamente o que você precisa 📝"
	donePrompt    = "🎉 **TUDO PRONTO!**\n\nVou te conectar com nosso especialista para um orçamento personalizado!"
)

// Handoff is produced once all three answers are in.
type Handoff struct {
	Budget whatsapp.Budget `json:"budget"`
	Link   string          `json:"link"`
	Delay  time.Duration   `json:"-"`
}

// Step is the result of one Start or Submit call.
type Step struct {
	Prompt  string   `json:"prompt"`
	State   State    `json:"state"`
	Handoff *Handoff `json:"handoff,omitempty"`
}

// Flow is a single visitor's budget conversation.
type Flow struct {
	number string

	mu     sync.Mutex
	state  State
	budget whatsapp.Budget
}

// New returns an idle flow that hands off to number. An empty number uses the
// agency default.
func New(number string) *Flow {
	if strings.TrimSpace(number) == "" {
		number = whatsapp.DefaultNumber
	}
	return &Flow{number: number, state: StateIdle}
}

// Start opens the flow. Starting an active flow restarts it with cleared data.
func (f *Flow) Start() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateAwaitingName
	f.budget = whatsapp.Budget{}
	return Step{Prompt: responder.LeadCapturePrompt, State: f.state}
}

// Submit stores text as the answer to the pending question.
func (f *Flow) Submit(text string) (Step, error) {
	text = strings.TrimSpace(text)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.activeLocked() {
		return Step{}, ErrNotActive
	}
	if text == "" {
		return Step{}, ErrEmptyInput
	}

	switch f.state {
	case StateAwaitingName:
		f.budget.Name = text
		f.state = StateAwaitingProject
		return Step{
			Prompt: fmt.Sprintf("**Perfeito, %s!**\n\nAgora me diga o nome do seu projeto ou empresa 😊", text),
			State:  f.state,
		}, nil
	case StateAwaitingProject:
		f.budget.ProjectName = text
		f.state = StateAwaitingNeed
		return Step{Prompt: projectPrompt, State: f.state}, nil
	default:
		f.budget.PainPoint = text
		link, err := whatsapp.Link(f.number, whatsapp.BudgetMessage(f.budget))
		if err != nil {
			return Step{}, fmt.Errorf("leadcapture: build handoff: %w", err)
		}
		handoff := &Handoff{Budget: f.budget, Link: link, Delay: HandoffDelay}
		f.state = StateIdle
		f.budget = whatsapp.Budget{}
		return Step{Prompt: donePrompt, State: StateComplete, Handoff: handoff}, nil
	}
}

// Reset drops any answers and returns to idle.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.budget = whatsapp.Budget{}
}

// State reports the current position.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Active reports whether a question is pending.
func (f *Flow) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeLocked()
}

func (f *Flow) activeLocked() bool {
	switch f.state {
	case StateAwaitingName, StateAwaitingProject, StateAwaitingNeed:
		return true
	}
	return false
}

// Placeholder is the input hint for the pending question.
func (f *Flow) Placeholder() string {
	switch f.State() {
	case StateAwaitingName:
		return "Digite seu nome completo..."
	case StateAwaitingProject:
		return "Qual o nome do seu projeto ou empresa?"
	case StateAwaitingNeed:
		return "Descreva o que você precisa..."
	default:
		return "Digite sua mensagem..."
	}
}
