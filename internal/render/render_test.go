package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nortedigital/pagebot/internal/playback"
	"github.com/nortedigital/pagebot/internal/script"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

func TestSplitBold(t *testing.T) {
	spans := SplitBold("👋 **Olá!** Tudo **bem**?")
	assert.Equal(t, []Span{
		{Text: "👋 "},
		{Text: "Olá!", Bold: true},
		{Text: " Tudo "},
		{Text: "bem", Bold: true},
		{Text: "?"},
	}, spans)

	assert.Equal(t, []Span{{Text: "TUDO PRONTO", Bold: true}}, SplitBold("**TUDO PRONTO**"))
	assert.Empty(t, SplitBold(""))
}

func TestRender_Quote(t *testing.T) {
	r := New()
	b, ok := r.Render(playback.Message{Type: script.TypeQuote, Content: "Pacote Completo Norte Digital", Price: 3497, IsBot: true})
	require.True(t, ok)
	require.NotNil(t, b.Quote)
	assert.Equal(t, QuoteHeader, b.Quote.Header)
	assert.Equal(t, "Pacote Completo Norte Digital", b.Quote.Title)
	assert.Equal(t, 12, b.Quote.Installments)
	assert.Equal(t, "291", b.Quote.Installment)
	assert.Equal(t, "3.497", b.Quote.Cash)
	assert.Equal(t, QuoteIncluded, b.Quote.Included)
}

func TestRender_QuoteSmallPrice(t *testing.T) {
	b, ok := New().Render(playback.Message{Type: script.TypeQuote, Price: 897})
	require.True(t, ok)
	assert.Equal(t, "75", b.Quote.Installment)
	assert.Equal(t, "897", b.Quote.Cash)
}

func TestInstallment_Rounds(t *testing.T) {
	assert.Equal(t, int64(291), Installment(3497))
	assert.Equal(t, int64(108), Installment(1297))
	assert.Equal(t, int64(0), Installment(0))
}

func TestRender_Service(t *testing.T) {
	r := New()
	b, ok := r.Render(playback.Message{Type: script.TypeService, Service: script.ServiceAll, IsBot: true})
	require.True(t, ok)
	require.NotNil(t, b.Service)
	assert.Equal(t, "R$ 3497 à vista", b.Service.Price)
	assert.Equal(t, script.BundleSavings, b.Service.Savings)
	assert.NotEmpty(t, b.Image)

	b, ok = r.Render(playback.Message{Type: script.TypeService, Service: script.ServiceChatbot})
	require.True(t, ok)
	assert.Empty(t, b.Service.Savings)
}

func TestRender_UnknownServiceDrawsNothing(t *testing.T) {
	_, ok := New().Render(playback.Message{Type: script.TypeService, Service: "nope"})
	assert.False(t, ok)
}

func TestRender_OptionsAndImage(t *testing.T) {
	r := New()
	b, ok := r.Render(playback.Message{Type: script.TypeOptions, Content: "Escolha:", Options: []string{"A", "B"}})
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, b.Options)
	assert.Equal(t, []Span{{Text: "Escolha:"}}, b.Spans)

	b, ok = r.Render(playback.Message{Type: script.TypeImage, Content: "Veja", Image: "https://example.com/a.png"})
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", b.Image)
}

func TestRender_CTA(t *testing.T) {
	b, ok := New().Render(playback.Message{Type: script.TypeCTA, Content: "Continuar no WhatsApp"})
	require.True(t, ok)
	require.NotNil(t, b.CTA)
	assert.Equal(t, "Continuar no WhatsApp", b.CTA.Label)

	text, err := whatsapp.Text(b.CTA.Href)
	require.NoError(t, err)
	assert.Equal(t, whatsapp.DemoCTAMessage, text)
	assert.Contains(t, b.CTA.Href, whatsapp.DemoNumber)
}

func TestRender_UnknownTypeFallsBackToText(t *testing.T) {
	b, ok := New().Render(playback.Message{Type: "weird", Content: "oi"})
	require.True(t, ok)
	assert.Equal(t, script.TypeText, b.Kind)
	assert.Equal(t, []Span{{Text: "oi"}}, b.Spans)
}

func TestQRGrid_FinderCorners(t *testing.T) {
	grid := QRGrid(func() float64 { return 0 })
	require.Len(t, grid, QRSize)

	assert.True(t, grid[0][0])
	assert.True(t, grid[0][QRSize-1])
	assert.True(t, grid[QRSize-1][0])
	assert.True(t, grid[3][3], "top-left center")
	assert.False(t, grid[1][1], "top-left gap")

	// Outside the finders nothing is dark when rnd never exceeds the threshold.
	assert.False(t, grid[10][10])
	assert.False(t, grid[QRSize-1][QRSize-1])
}

func TestQRGrid_FillThreshold(t *testing.T) {
	grid := QRGrid(func() float64 { return 0.56 })
	assert.True(t, grid[10][10])
	assert.True(t, grid[QRSize-1][QRSize-1])

	grid = QRGrid(func() float64 { return 0.55 })
	assert.False(t, grid[10][10])
}

func TestRender_QRCodeSameSeedSameGrid(t *testing.T) {
	msg := playback.Message{Type: script.TypeQRCode, Content: "Pagamento PIX"}
	a, ok := New(WithSeed(42)).Render(msg)
	require.True(t, ok)
	b, _ := New(WithSeed(42)).Render(msg)
	assert.Equal(t, a.QRCode.Grid, b.QRCode.Grid)
	assert.Equal(t, PixLabel, a.QRCode.Label)
	assert.Equal(t, PixCaption, a.QRCode.Caption)
}

func TestTerminal_WriteText(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	require.NoError(t, term.WriteText(Text("**Olá!** Tudo bem?", true)))
	b, _ := New().Render(playback.Message{Type: script.TypeQuote, Content: "Pacote", Price: 3497, IsBot: true})
	require.NoError(t, term.WriteText(b))
	require.NoError(t, term.WriteTyping(false))

	out := buf.String()
	assert.Contains(t, out, "PageBot")
	assert.Contains(t, out, "Olá!")
	assert.Contains(t, out, "Tudo bem?")
	assert.Contains(t, out, "R$ 291")
	assert.Contains(t, out, "ou R$ 3.497 à vista")
	assert.Contains(t, out, "está digitando")
}

func TestTerminal_ScannableCTA(t *testing.T) {
	b, _ := New().Render(playback.Message{Type: script.TypeCTA, Content: "Continuar no WhatsApp", IsBot: true})

	var plain bytes.Buffer
	require.NoError(t, NewTerminal(&plain).WriteText(b))

	var scannable bytes.Buffer
	term := NewTerminal(&scannable)
	term.ScannableLinks = true
	require.NoError(t, term.WriteText(b))

	assert.Contains(t, scannable.String(), "Continuar no WhatsApp")
	assert.Greater(t, strings.Count(scannable.String(), "\n"), strings.Count(plain.String(), "\n")+10)
}

func TestGridString(t *testing.T) {
	assert.Equal(t, "██  \n  ██\n", GridString([][]bool{{true, false}, {false, true}}))
}
