// Package guide scripts Nori, the floating assistant that greets visitors as
// they scroll through the landing page sections.
package guide

import (
	"errors"
	"fmt"
	"time"
)

const (
	AgentName = "Nori"

	// ThinkingDelay precedes every answer to an option.
	ThinkingDelay = 800 * time.Millisecond

	// Bubble is the speech balloon next to the collapsed agent button.
	Bubble = "Olá! Posso te ajudar? 👋"

	closingPrompt = "Como posso te ajudar hoje?"
)

// Section IDs as they appear in the page.
const (
	SectionHero      = "hero"
	SectionServices  = "services"
	SectionPortfolio = "portfolio"
	SectionContact   = "contact"
)

// Action names understood by Act.
const (
	ActionExplainLP        = "explain_lp"
	ActionExplainSystems   = "explain_systems"
	ActionExplainEcommerce = "explain_ecommerce"
	ActionShowCases        = "show_cases"
	ActionOpenChat         = "open_chat"
)

// ErrUnknownSection is returned for section IDs the guide does not track.
var ErrUnknownSection = errors.New("guide: unknown section")

// Position is the screen corner the agent button sits in.
type Position string

const (
	BottomRight Position = "bottom-right"
	BottomLeft  Position = "bottom-left"
	TopRight    Position = "top-right"
)

// Option is a clickable suggestion.
type Option struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Message is one agent balloon.
type Message struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options,omitempty"`
}

// Section holds the script shown when a page section comes into view.
type Section struct {
	ID       string
	Title    string
	Messages []string
	Options  []Option
	Position Position
	Delay    time.Duration
}

// View is what the client shows after entering a section. When Visible is
// false the agent is hidden and nothing else is set.
type View struct {
	Section  string        `json:"section"`
	Title    string        `json:"title,omitempty"`
	Visible  bool          `json:"visible"`
	Position Position      `json:"position,omitempty"`
	Delay    time.Duration `json:"-"`
	Messages []Message     `json:"messages,omitempty"`
}

// Reply answers an option click.
type Reply struct {
	Action   string        `json:"action"`
	Message  *Message      `json:"message,omitempty"`
	OpenChat bool          `json:"open_chat"`
	Delay    time.Duration `json:"-"`
}

// Guide serves the section scripts.
type Guide struct {
	sections map[string]Section
	order    []string
}

// New returns the guide for the Norte Digital landing page.
func New() *Guide {
	g := &Guide{sections: make(map[string]Section)}
	for _, s := range defaultSections() {
		g.sections[s.ID] = s
		g.order = append(g.order, s.ID)
	}
	return g
}

// Sections lists the sections in page order.
func (g *Guide) Sections() []Section {
	out := make([]Section, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.sections[id])
	}
	return out
}

// Enter reports what to show when section scrolls into view. The contact
// section is known but hides the agent.
func (g *Guide) Enter(section string) (View, error) {
	if section == SectionContact {
		return View{Section: section}, nil
	}
	s, ok := g.sections[section]
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	msgs := make([]Message, 0, len(s.Messages)+1)
	for i, text := range s.Messages {
		msgs = append(msgs, Message{ID: i, Text: text})
	}
	msgs = append(msgs, Message{
		ID:      len(s.Messages),
		Text:    closingPrompt,
		Options: append([]Option(nil), s.Options...),
	})

	return View{
		Section:  s.ID,
		Title:    s.Title,
		Visible:  true,
		Position: s.Position,
		Delay:    s.Delay,
		Messages: msgs,
	}, nil
}

// Start opens the expanded agent with Nori's introduction.
func (g *Guide) Start() Message {
	return Message{
		ID:   0,
		Text: "Olá! 😊 Eu sou o Nori, assistente da Norte Digital.",
		Options: []Option{
			{Text: "Já tenho uma ideia", Action: ActionOpenChat},
			{Text: "Quero automatizar algo", Action: "discuss_automation"},
			{Text: "Só explorando", Action: "continue_exploring"},
		},
	}
}

// Act answers an option. open_chat carries no message; the client opens the
// chat instead.
func (g *Guide) Act(action string) Reply {
	reply := Reply{Action: action, Delay: ThinkingDelay}
	if action == ActionOpenChat {
		reply.OpenChat = true
		return reply
	}
	msg, ok := actionReplies[action]
	if !ok {
		msg = defaultReply
	}
	msg.Options = append([]Option(nil), msg.Options...)
	reply.Message = &msg
	return reply
}

// Known reports whether action has its own reply.
func Known(action string) bool {
	if action == ActionOpenChat {
		return true
	}
	_, ok := actionReplies[action]
	return ok
}
