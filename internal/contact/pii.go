package contact

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// Brazilian numbers: optional +55, two-digit area code, 8 or 9 digit line.
	phoneRe = regexp.MustCompile(`(?:\+?55[-.\s]?)?\(?\d{2}\)?[-.\s]?9?\d{4}[-.\s]?\d{4}`)
)

const previewRunes = 60

// Fingerprint returns a short stable hash of an e-mail address so log lines
// can be correlated without storing the address.
func Fingerprint(email string) string {
	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%x", h[:6])
}

// Scrub replaces e-mails with [EMAIL] and phone numbers with [TELEFONE].
// Names are kept.
func Scrub(text string) string {
	text = emailRe.ReplaceAllString(text, "[EMAIL]")
	text = phoneRe.ReplaceAllString(text, "[TELEFONE]")
	return text
}

// preview is the scrubbed start of a message, for logs.
func preview(text string) string {
	text = Scrub(text)
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	return string([]rune(text)[:previewRunes]) + "…"
}
