// Package responder answers free text with canned replies picked by an ordered
// set of keyword rules.
package responder

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
)

// Category classifies which rule produced a reply.
type Category string

const (
	CategoryGreeting    Category = "greeting"
	CategoryAbout       Category = "about"
	CategoryPricing     Category = "pricing"
	CategoryLandingPage Category = "landing_page"
	CategorySite        Category = "institutional_site"
	CategoryAutomation  Category = "automation"
	CategoryChatbot     Category = "chatbot"
	CategoryTimeline    Category = "timeline"
	CategoryHuman       Category = "human_handoff"
	CategoryThanks      Category = "thanks"
	CategoryFallback    Category = "fallback"
)

// Rule pairs a pattern with the reply it triggers.
type Rule struct {
	Category          Category
	Pattern           *regexp.Regexp
	Response          string
	StartsLeadCapture bool
}

// Reply is the responder's answer to one message.
type Reply struct {
	Category          Category `json:"category"`
	Text              string   `json:"text"`
	StartsLeadCapture bool     `json:"starts_lead_capture"`
}

// IntN is the randomness used to pick a fallback reply.
type IntN interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Responder evaluates rules in order; the first match wins.
type Responder struct {
	rules     []Rule
	fallbacks []string

	mu  sync.Mutex
	rng IntN
}

// Option configures a Responder.
type Option func(*Responder)

// WithRand makes fallback selection deterministic.
func WithRand(r IntN) Option {
	return func(rs *Responder) {
		if r != nil {
			rs.rng = r
		}
	}
}

// WithRules replaces the default rule set.
func WithRules(rules []Rule) Option {
	return func(rs *Responder) {
		rs.rules = append([]Rule(nil), rules...)
	}
}

// WithFallbacks replaces the default fallback replies.
func WithFallbacks(fallbacks []string) Option {
	return func(rs *Responder) {
		if len(fallbacks) > 0 {
			rs.fallbacks = append([]string(nil), fallbacks...)
		}
	}
}

// New returns a responder loaded with the Norte Digital rules.
func New(opts ...Option) *Responder {
	r := &Responder{
		rules:     DefaultRules(),
		fallbacks: DefaultFallbacks(),
		rng:       globalRand{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond classifies text and returns the matching canned reply.
func (r *Responder) Respond(text string) Reply {
	if rule, ok := r.Match(text); ok {
		return Reply{
			Category:          rule.Category,
			Text:              rule.Response,
			StartsLeadCapture: rule.StartsLeadCapture,
		}
	}
	return Reply{Category: CategoryFallback, Text: r.fallback()}
}

// Match returns the first rule whose pattern matches text.
func (r *Responder) Match(text string) (Rule, bool) {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.Pattern != nil && rule.Pattern.MatchString(lower) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Fallbacks returns a copy of the fallback replies.
func (r *Responder) Fallbacks() []string {
	return append([]string(nil), r.fallbacks...)
}

func (r *Responder) fallback() string {
	r.mu.Lock()
	idx := r.rng.IntN(len(r.fallbacks))
	r.mu.Unlock()
	return r.fallbacks[idx]
}
