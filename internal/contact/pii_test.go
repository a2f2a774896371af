package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint("ana@padaria.com")
	assert.Equal(t, a, Fingerprint("  ANA@padaria.com "))
	assert.NotEqual(t, a, Fingerprint("bia@padaria.com"))
	assert.Len(t, a, 12)
}

func TestScrub(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"email", "me escreve em ana@padaria.com por favor", "me escreve em [EMAIL] por favor"},
		{"mobile", "liga no (11) 98888-7777", "liga no [TELEFONE]"},
		{"international", "meu número é +5511999825835", "meu número é [TELEFONE]"},
		{"landline", "fixo 11 3333-4444", "fixo [TELEFONE]"},
		{"both", "ana@padaria.com / 11 98888-7777", "[EMAIL] / [TELEFONE]"},
		{"no pii", "Quero um site para minha padaria", "Quero um site para minha padaria"},
		{"name kept", "Meu nome é Ana Souza", "Meu nome é Ana Souza"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Scrub(tt.input))
		})
	}
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("á", 100)
	got := preview(long)
	assert.Equal(t, previewRunes+1, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, "oi", preview("oi"))
}
