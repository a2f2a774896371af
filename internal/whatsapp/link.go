// Package whatsapp builds wa.me deep links and the handoff texts sent through them.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultNumber is the agency's WhatsApp number in international format.
	DefaultNumber = "5511999825835"

	// DemoNumber is the placeholder number used by the scripted demo CTA.
	DemoNumber = "5511999999999"

	baseURL = "https://wa.me/"
)

// ErrInvalidNumber is returned when a number has no digits.
var ErrInvalidNumber = errors.New("whatsapp: number must contain digits")

// Link builds https://wa.me/<number>?text=<encoded text>. Non-digit characters
// are stripped from number so "+55 (11) 99982-5835" is accepted.
func Link(number, text string) (string, error) {
	digits := Digits(number)
	if digits == "" {
		return "", ErrInvalidNumber
	}
	if text == "" {
		return baseURL + digits, nil
	}
	return fmt.Sprintf("%s%s?text=%s", baseURL, digits, EncodeComponent(text)), nil
}

// MustLink is Link for numbers known to be valid.
func MustLink(number, text string) string {
	link, err := Link(number, text)
	if err != nil {
		panic(err)
	}
	return link
}

// Text extracts and decodes the text parameter of a wa.me link.
func Text(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("whatsapp: parse link: %w", err)
	}
	return u.Query().Get("text"), nil
}

// Digits strips everything but 0-9.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeComponent percent-encodes s the way browsers' encodeURIComponent does:
// spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) stay literal.
func EncodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	return componentFixups.Replace(escaped)
}

var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
