// Package render turns revealed messages into display blocks that a web client
// or a terminal can draw without knowing the message type rules.
package render

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nortedigital/pagebot/internal/playback"
	"github.com/nortedigital/pagebot/internal/script"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

const (
	QuoteHeader   = "Orçamento Especial"
	QuoteIncluded = "Incluso: Setup + Treinamento + Suporte"
	QuoteMonths   = 12

	PixLabel   = "PIX"
	PixCaption = "Escaneie para pagar"
)

// Span is a run of text with uniform weight.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Quote is the price proposal card.
type Quote struct {
	Header       string `json:"header"`
	Title        string `json:"title"`
	Installments int    `json:"installments"`
	Installment  string `json:"installment"`
	Cash         string `json:"cash"`
	Included     string `json:"included"`
}

// QRCode is the payment card. Grid is purely decorative.
type QRCode struct {
	Label   string   `json:"label"`
	Grid    [][]bool `json:"grid"`
	Caption string   `json:"caption"`
}

// CTA is the call-to-action button.
type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ServiceCard is a catalogue entry ready for display.
type ServiceCard struct {
	ID          script.ServiceID `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       string           `json:"price"`
	Features    []string         `json:"features"`
	Image       string           `json:"image"`
	Savings     string           `json:"savings,omitempty"`
}

// Block is the visual form of one message. Only the fields for Kind are set.
type Block struct {
	Kind    script.MessageType `json:"kind"`
	IsBot   bool               `json:"is_bot"`
	Spans   []Span             `json:"spans,omitempty"`
	Image   string             `json:"image,omitempty"`
	Options []string           `json:"options,omitempty"`
	Quote   *Quote             `json:"quote,omitempty"`
	QRCode  *QRCode            `json:"qr_code,omitempty"`
	CTA     *CTA               `json:"cta,omitempty"`
	Service *ServiceCard       `json:"service,omitempty"`
}

// Lookup resolves a service reference.
type Lookup func(script.ServiceID) (script.ServiceInfo, bool)

// Renderer maps messages to blocks.
type Renderer struct {
	lookup  Lookup
	printer *message.Printer

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLookup replaces the built-in catalogue.
func WithLookup(l Lookup) Option {
	return func(r *Renderer) {
		if l != nil {
			r.lookup = l
		}
	}
}

// WithSeed fixes the QR fill pattern.
func WithSeed(seed uint64) Option {
	return func(r *Renderer) {
		r.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// New returns a renderer backed by the service catalogue.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		lookup:  script.LookupService,
		printer: message.NewPrinter(language.BrazilianPortuguese),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the block for msg. It reports false when a service message
// refers to an unknown catalogue entry, in which case nothing is drawn.
func (r *Renderer) Render(msg playback.Message) (Block, bool) {
	b := Block{Kind: msg.Type, IsBot: msg.IsBot}
	switch msg.Type {
	case script.TypeImage:
		b.Spans = SplitBold(msg.Content)
		b.Image = msg.Image
	case script.TypeService:
		info, ok := r.lookup(msg.Service)
		if !ok {
			return Block{}, false
		}
		b.Image = info.Image
		b.Service = r.serviceCard(info)
	case script.TypeOptions:
		b.Spans = SplitBold(msg.Content)
		b.Options = append([]string(nil), msg.Options...)
	case script.TypeQuote:
		b.Quote = r.quote(msg.Content, msg.Price)
	case script.TypeQRCode:
		b.QRCode = &QRCode{Label: PixLabel, Grid: r.grid(), Caption: PixCaption}
	case script.TypeCTA:
		b.CTA = &CTA{Label: msg.Content, Href: whatsapp.MustLink(whatsapp.DemoNumber, whatsapp.DemoCTAMessage)}
	default:
		b.Kind = script.TypeText
		b.Spans = SplitBold(msg.Content)
	}
	return b, true
}

// Text renders free chat text.
func Text(content string, isBot bool) Block {
	return Block{Kind: script.TypeText, IsBot: isBot, Spans: SplitBold(content)}
}

// SplitBold splits on "**": odd segments are bold. Empty segments are dropped.
func SplitBold(text string) []Span {
	parts := strings.Split(text, "**")
	spans := make([]Span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}

// Installment is the monthly value of price split in QuoteMonths, rounded.
func Installment(price float64) int64 {
	return int64(math.Round(price / QuoteMonths))
}

// FormatPrice renders price with pt-BR grouping, e.g. 3497 as "3.497".
func (r *Renderer) FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return r.printer.Sprintf("%d", int64(price))
	}
	return r.printer.Sprintf("%.2f", price)
}

func (r *Renderer) quote(title string, price float64) *Quote {
	return &Quote{
		Header:       QuoteHeader,
		Title:        title,
		Installments: QuoteMonths,
		Installment:  strconv.FormatInt(Installment(price), 10),
		Cash:         r.FormatPrice(price),
		Included:     QuoteIncluded,
	}
}

func (r *Renderer) serviceCard(info script.ServiceInfo) *ServiceCard {
	card := &ServiceCard{
		ID:          info.ID,
		Name:        info.Name,
		Description: info.Description,
		Price:       "R$ " + strconv.FormatFloat(info.Price, 'f', -1, 64) + " à vista",
		Features:    append([]string(nil), info.Features...),
		Image:       info.Image,
	}
	if info.ID == script.ServiceAll {
		card.Savings = script.BundleSavings
	}
	return card
}

func (r *Renderer) grid() [][]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return QRGrid(r.rng.Float64)
}
