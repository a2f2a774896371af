// Package chat implements the site's chat assistant: canned answers, the
// budget lead-capture flow and the WhatsApp handoff, one session per visitor.
package chat

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nortedigital/pagebot/internal/leadcapture"
	"github.com/nortedigital/pagebot/internal/responder"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

const (
	// WelcomeMessage opens every conversation and is restored by Clear.
	WelcomeMessage = "👋 **Olá! Seja bem-vindo(a) à Norte Digital!**\n\nSomos especialistas em soluções digitais que transformam negócios.\n\n**Como posso te ajudar hoje?**"

	// TypingDelay is shown before a canned answer.
	TypingDelay = 600 * time.Millisecond
	// LeadStepDelay precedes the next lead-capture prompt.
	LeadStepDelay = 300 * time.Millisecond

	welcomeID = 1
)

// ErrEmptyMessage is returned for blank input.
var ErrEmptyMessage = errors.New("chat: empty message")

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry of the conversation history.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Turn is what one Send produced. Clients show the typing indicator when Typing
// is set, wait Delay, then append Replies. A non-nil Handoff should be opened
// after its own delay.
type Turn struct {
	User        Message              `json:"user"`
	Replies     []Message            `json:"replies"`
	Delay       time.Duration        `json:"-"`
	Typing      bool                 `json:"typing"`
	Category    responder.Category   `json:"category,omitempty"`
	LeadState   leadcapture.State    `json:"lead_state"`
	Placeholder string               `json:"placeholder"`
	Handoff     *leadcapture.Handoff `json:"handoff,omitempty"`
}

var quickReplies = []string{
	"👋 Sobre a Norte Digital",
	"🌐 Landing Pages",
	"🚀 Sites Institucionais",
	"🤖 Automações",
	"💬 PageBot (Chatbot)",
	"💰 Valores e orçamentos",
	"📞 Falar com especialista",
	"⏱️ Tempo de entrega",
}

// QuickReplies returns the suggestion chips shown above the input.
func QuickReplies() []string {
	return append([]string(nil), quickReplies...)
}

// Options configures new sessions.
type Options struct {
	Responder *responder.Responder
	// Number receives WhatsApp handoffs. Empty means the agency default.
	Number string
	Now    func() time.Time
}

// Session is a single visitor's conversation.
type Session struct {
	id        string
	responder *responder.Responder
	flow      *leadcapture.Flow
	number    string
	now       func() time.Time

	mu         sync.Mutex
	messages   []Message
	nextID     int64
	lastActive time.Time
}

// NewSession starts a conversation holding only the welcome message.
func NewSession(id string, opts Options) *Session {
	if opts.Responder == nil {
		opts.Responder = responder.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if strings.TrimSpace(opts.Number) == "" {
		opts.Number = whatsapp.DefaultNumber
	}
	s := &Session{
		id:        id,
		responder: opts.Responder,
		flow:      leadcapture.New(opts.Number),
		number:    opts.Number,
		now:       opts.Now,
	}
	s.resetLocked()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Send records the visitor's text and computes the bot's answer.
func (s *Session) Send(text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turn := Turn{User: s.appendLocked(text, SenderUser)}

	if s.flow.Active() {
		step, err := s.flow.Submit(text)
		if err != nil {
			return Turn{}, fmt.Errorf("chat: lead capture: %w", err)
		}
		turn.Replies = []Message{s.appendLocked(step.Prompt, SenderBot)}
		turn.Delay = LeadStepDelay
		turn.Handoff = step.Handoff
	} else {
		reply := s.responder.Respond(text)
		if reply.StartsLeadCapture {
			s.flow.Start()
		}
		turn.Replies = []Message{s.appendLocked(reply.Text, SenderBot)}
		turn.Delay = TypingDelay
		turn.Typing = true
		turn.Category = reply.Category
	}

	turn.LeadState = s.flow.State()
	turn.Placeholder = s.flow.Placeholder()
	return turn, nil
}

// Clear restores the welcome-only history and abandons lead capture.
func (s *Session) Clear() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow.Reset()
	s.resetLocked()
	return append([]Message(nil), s.messages...)
}

// History returns a copy of the conversation.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Placeholder is the input hint for the current lead-capture state.
func (s *Session) Placeholder() string {
	return s.flow.Placeholder()
}

// LeadState reports the lead-capture position.
func (s *Session) LeadState() leadcapture.State {
	return s.flow.State()
}

// QuickReplies returns the suggestion chips. Sending one is the same as typing it.
func (s *Session) QuickReplies() []string {
	return QuickReplies()
}

// ContactLink is the "talk to a specialist" WhatsApp link.
func (s *Session) ContactLink() (string, error) {
	return whatsapp.Link(s.number, whatsapp.ContactMessage)
}

// LastActive is the time of the last Send, Clear or creation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) resetLocked() {
	now := s.now()
	s.messages = []Message{{ID: welcomeID, Text: WelcomeMessage, Sender: SenderBot, Timestamp: now}}
	s.nextID = welcomeID + 1
	s.lastActive = now
}

func (s *Session) appendLocked(text string, sender Sender) Message {
	now := s.now()
	msg := Message{ID: s.nextID, Text: text, Sender: sender, Timestamp: now}
	s.nextID++
	s.messages = append(s.messages, msg)
	s.lastActive = now
	return msg
}
