// Package playback drives a conversation script on a timeline: each step is
// revealed after its delay, bot steps are preceded by a typing indicator, and
// the conversation restarts from scratch after a cooldown.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/nortedigital/pagebot/internal/script"
	"github.com/nortedigital/pagebot/pkg/logging"
)

// DefaultCooldown is the pause between the last step and the replay.
const DefaultCooldown = 6 * time.Second

// Message is a revealed script step.
type Message struct {
	ID        int                `json:"id"`
	Type      script.MessageType `json:"type"`
	Content   string             `json:"content"`
	IsBot     bool               `json:"is_bot"`
	Options   []string           `json:"options,omitempty"`
	Image     string             `json:"image,omitempty"`
	Price     float64            `json:"price,omitempty"`
	Service   script.ServiceID   `json:"service,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// EventKind names a playback transition.
type EventKind string

const (
	EventTyping  EventKind = "typing"
	EventMessage EventKind = "message"
	EventReset   EventKind = "reset"
)

// Event is published to observers on every transition.
type Event struct {
	Kind         EventKind `json:"kind"`
	Typing       bool      `json:"typing"`
	ImageLoading bool      `json:"image_loading,omitempty"`
	Message      *Message  `json:"message,omitempty"`
	Step         int       `json:"step"`
}

// Observer receives playback events. It is called synchronously.
type Observer func(Event)

// State is a point-in-time copy of the player.
type State struct {
	Step         int       `json:"step"`
	Messages     []Message `json:"messages"`
	Typing       bool      `json:"typing"`
	ImageLoading bool      `json:"image_loading"`
	ShowQRCode   bool      `json:"show_qr_code"`
	Loops        int       `json:"loops"`
}

// Player reveals script steps over time.
type Player struct {
	script   *script.Script
	clock    Clock
	cooldown time.Duration
	logger   *logging.Logger

	mu           sync.Mutex
	step         int
	messages     []Message
	typing       bool
	imageLoading bool
	showQRCode   bool
	loops        int
	observers    []Observer
}

// Option configures a Player.
type Option func(*Player)

// WithClock overrides the real clock.
func WithClock(c Clock) Option {
	return func(p *Player) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithCooldown overrides the replay cooldown.
func WithCooldown(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.cooldown = d
		}
	}
}

// WithObserver registers an event observer.
func WithObserver(o Observer) Option {
	return func(p *Player) {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPlayer creates a player positioned at step 0 with no messages.
func NewPlayer(s *script.Script, opts ...Option) *Player {
	if s == nil {
		s = script.Demo()
	}
	p := &Player{
		script:   s,
		clock:    RealClock(),
		cooldown: DefaultCooldown,
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run steps through the script until ctx is cancelled, looping forever.
func (p *Player) Run(ctx context.Context) error {
	for {
		if err := p.Step(ctx); err != nil {
			return err
		}
	}
}

// Step performs exactly one transition: reveal the next step or, past the end
// of the script, wait the cooldown and reset. It only fails when ctx ends.
func (p *Player) Step(ctx context.Context) error {
	p.mu.Lock()
	idx := p.step
	p.mu.Unlock()

	step, ok := p.script.At(idx)
	if !ok {
		return p.reset(ctx)
	}

	if step.IsBot {
		loading := step.Type == script.TypeImage || step.Type == script.TypeService
		p.mu.Lock()
		p.typing = true
		p.imageLoading = loading
		p.mu.Unlock()
		p.publish(Event{Kind: EventTyping, Typing: true, ImageLoading: loading, Step: idx})
	}

	if err := p.wait(ctx, step.Wait()); err != nil {
		p.mu.Lock()
		p.typing = false
		p.imageLoading = false
		p.mu.Unlock()
		return err
	}

	msg := Message{
		ID:        idx,
		Type:      step.Type,
		Content:   step.Content,
		IsBot:     step.IsBot,
		Timestamp: p.clock.Now(),
	}
	if step.IsBot {
		msg.Options = step.Options
		msg.Image = step.Image
		msg.Price = step.Price
		msg.Service = step.Service
	}

	p.mu.Lock()
	p.typing = false
	p.imageLoading = false
	if step.Type == script.TypeQRCode {
		p.showQRCode = true
	}
	p.messages = append(p.messages, msg)
	p.step = idx + 1
	p.mu.Unlock()

	p.publish(Event{Kind: EventMessage, Message: &msg, Step: idx})
	return nil
}

func (p *Player) reset(ctx context.Context) error {
	if err := p.wait(ctx, p.cooldown); err != nil {
		return err
	}
	p.mu.Lock()
	p.messages = nil
	p.step = 0
	p.showQRCode = false
	p.loops++
	loops := p.loops
	p.mu.Unlock()

	p.logger.Debug("playback: script restarted", "loops", loops)
	p.publish(Event{Kind: EventReset, Step: 0})
	return nil
}

func (p *Player) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}

func (p *Player) publish(ev Event) {
	p.mu.Lock()
	observers := append([]Observer(nil), p.observers...)
	p.mu.Unlock()
	for _, o := range observers {
		o(ev)
	}
}

// Snapshot returns a copy of the current state.
func (p *Player) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		Step:         p.step,
		Messages:     append([]Message(nil), p.messages...),
		Typing:       p.typing,
		ImageLoading: p.imageLoading,
		ShowQRCode:   p.showQRCode,
		Loops:        p.loops,
	}
}

// Done reports whether every step has been revealed and the cooldown is next.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.step >= p.script.Len()
}
