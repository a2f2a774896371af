package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mdp/qrterminal/v3"
)

// Terminal writes blocks as coloured text.
type Terminal struct {
	w io.Writer

	// ScannableLinks prints CTA hrefs as terminal QR codes.
	ScannableLinks bool

	bold    *color.Color
	bot     *color.Color
	visitor *color.Color
	muted   *color.Color
	accent  *color.Color
	success *color.Color
}

// NewTerminal returns a writer that draws on w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w:       w,
		bold:    color.New(color.Bold),
		bot:     color.New(color.FgHiCyan, color.Bold),
		visitor: color.New(color.FgHiWhite, color.Bold),
		muted:   color.New(color.FgHiBlack),
		accent:  color.New(color.FgHiYellow),
		success: color.New(color.FgHiGreen),
	}
}

// WriteText prints b followed by a blank line.
func (t *Terminal) WriteText(b Block) error {
	var sb strings.Builder
	if b.IsBot {
		t.bot.Fprint(&sb, "PageBot")
	} else {
		t.visitor.Fprint(&sb, "Você")
	}
	sb.WriteString("\n")

	t.spans(&sb, b.Spans)
	if b.Image != "" {
		t.muted.Fprintf(&sb, "[imagem] %s\n", b.Image)
	}
	for _, opt := range b.Options {
		t.accent.Fprintf(&sb, "  ( %s )\n", opt)
	}
	if q := b.Quote; q != nil {
		t.accent.Fprintf(&sb, "✦ %s\n", strings.ToUpper(q.Header))
		t.bold.Fprintln(&sb, q.Title)
		fmt.Fprintf(&sb, "%dx de ", q.Installments)
		t.bold.Fprintf(&sb, "R$ %s\n", q.Installment)
		t.muted.Fprintf(&sb, "ou R$ %s à vista\n", q.Cash)
		t.success.Fprintf(&sb, "✓ %s\n", q.Included)
	}
	if s := b.Service; s != nil {
		t.bold.Fprintf(&sb, "%s", s.Name)
		t.accent.Fprintf(&sb, "  %s\n", s.Price)
		t.muted.Fprintln(&sb, s.Description)
		for _, f := range s.Features {
			fmt.Fprintf(&sb, "  • %s\n", f)
		}
		if s.Savings != "" {
			t.success.Fprintf(&sb, "✓ %s\n", s.Savings)
		}
	}
	if qr := b.QRCode; qr != nil {
		t.bold.Fprintln(&sb, qr.Label)
		sb.WriteString(GridString(qr.Grid))
		t.muted.Fprintln(&sb, qr.Caption)
	}
	if c := b.CTA; c != nil {
		t.success.Fprintf(&sb, "➜ %s\n", c.Label)
		t.muted.Fprintln(&sb, c.Href)
	}
	sb.WriteString("\n")

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return fmt.Errorf("render: write block: %w", err)
	}
	if b.CTA != nil && t.ScannableLinks {
		t.WriteLinkQR(b.CTA.Href)
	}
	return nil
}

// WriteLinkQR prints a scannable QR code for link.
func (t *Terminal) WriteLinkQR(link string) {
	qrterminal.GenerateHalfBlock(link, qrterminal.L, t.w)
}

// WriteTyping prints the typing indicator.
func (t *Terminal) WriteTyping(imageLoading bool) error {
	label := "PageBot está digitando..."
	if imageLoading {
		label = "PageBot está carregando uma imagem..."
	}
	if _, err := t.muted.Fprintln(t.w, label); err != nil {
		return fmt.Errorf("render: write typing: %w", err)
	}
	return nil
}

func (t *Terminal) spans(sb *strings.Builder, spans []Span) {
	if len(spans) == 0 {
		return
	}
	for _, s := range spans {
		if s.Bold {
			t.bold.Fprint(sb, s.Text)
			continue
		}
		sb.WriteString(s.Text)
	}
	sb.WriteString("\n")
}

// GridString draws grid with two block characters per dark cell.
func GridString(grid [][]bool) string {
	var sb strings.Builder
	for _, row := range grid {
		for _, dark := range row {
			if dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
