// Package script holds the static, build-time conversation data played back by
// the PageBot demo.
package script

import (
	"errors"
	"fmt"
	"time"
)

// MessageType is the visual kind of a scripted message.
type MessageType string

const (
	TypeText    MessageType = "text"
	TypeImage   MessageType = "image"
	TypeOptions MessageType = "options"
	TypeQuote   MessageType = "quote"
	TypeQRCode  MessageType = "qrcode"
	TypeCTA     MessageType = "cta"
	TypeService MessageType = "service"
)

// DefaultDelay applies to steps that do not declare their own delay.
const DefaultDelay = time.Second

var (
	// ErrEmptyScript is returned when a script has no steps.
	ErrEmptyScript = errors.New("script: no steps")

	// ErrUnknownType is returned for a step with an unsupported message type.
	ErrUnknownType = errors.New("script: unknown message type")
)

// Step is one authored entry of a conversation script.
type Step struct {
	Type    MessageType   `json:"type"`
	Content string        `json:"content"`
	IsBot   bool          `json:"is_bot"`
	Options []string      `json:"options,omitempty"`
	Image   string        `json:"image,omitempty"`
	Price   float64       `json:"price,omitempty"`
	Delay   time.Duration `json:"-"`
	Service ServiceID     `json:"service,omitempty"`
}

// Wait returns the step delay, falling back to DefaultDelay.
func (s Step) Wait() time.Duration {
	if s.Delay <= 0 {
		return DefaultDelay
	}
	return s.Delay
}

// Script is an ordered, immutable list of steps.
type Script struct {
	steps []Step
}

// New copies steps into a script after validating them.
func New(steps []Step) (*Script, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyScript
	}
	out := make([]Step, len(steps))
	for i, step := range steps {
		if err := validateStep(step); err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i, err)
		}
		out[i] = cloneStep(step)
	}
	return &Script{steps: out}, nil
}

// MustNew is New for package-level scripts known to be valid.
func MustNew(steps []Step) *Script {
	s, err := New(steps)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of steps.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.steps)
}

// At returns a copy of the step at index i.
func (s *Script) At(i int) (Step, bool) {
	if s == nil || i < 0 || i >= len(s.steps) {
		return Step{}, false
	}
	return cloneStep(s.steps[i]), true
}

// Steps returns a copy of every step.
func (s *Script) Steps() []Step {
	if s == nil {
		return nil
	}
	out := make([]Step, len(s.steps))
	for i, step := range s.steps {
		out[i] = cloneStep(step)
	}
	return out
}

// TotalDuration is the sum of all step waits, excluding the loop cooldown.
func (s *Script) TotalDuration() time.Duration {
	var total time.Duration
	for _, step := range s.Steps() {
		total += step.Wait()
	}
	return total
}

func validateStep(step Step) error {
	switch step.Type {
	case TypeText, TypeImage, TypeOptions, TypeQuote, TypeQRCode, TypeCTA:
	case TypeService:
		if _, ok := LookupService(step.Service); !ok {
			return fmt.Errorf("unknown service %q", step.Service)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownType, step.Type)
	}
	if step.Delay < 0 {
		return errors.New("negative delay")
	}
	return nil
}

func cloneStep(step Step) Step {
	if step.Options != nil {
		step.Options = append([]string(nil), step.Options...)
	}
	return step
}
