package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nortedigital/pagebot/internal/leadcapture"
	"github.com/nortedigital/pagebot/internal/responder"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession() *Session {
	return NewSession("test", Options{})
}

func TestNewSession_Welcome(t *testing.T) {
	s := newTestSession()
	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, int64(1), history[0].ID)
	assert.Equal(t, SenderBot, history[0].Sender)
	assert.Equal(t, WelcomeMessage, history[0].Text)
}

func TestSend_EmptyMessage(t *testing.T) {
	s := newTestSession()
	_, err := s.Send("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, s.History(), 1)
}

func TestSend_Greeting(t *testing.T) {
	s := newTestSession()
	turn, err := s.Send("oi")
	require.NoError(t, err)

	assert.Equal(t, SenderUser, turn.User.Sender)
	assert.Equal(t, "oi", turn.User.Text)
	require.Len(t, turn.Replies, 1)
	assert.Equal(t, responder.GreetingReply, turn.Replies[0].Text)
	assert.Equal(t, responder.CategoryGreeting, turn.Category)
	assert.Equal(t, TypingDelay, turn.Delay)
	assert.True(t, turn.Typing)
	assert.Len(t, s.History(), 3)
}

func TestSend_PricingRunsLeadCapture(t *testing.T) {
	s := newTestSession()

	turn, err := s.Send("Quanto custa um site?")
	require.NoError(t, err)
	assert.Equal(t, responder.CategoryPricing, turn.Category)
	assert.Equal(t, responder.LeadCapturePrompt, turn.Replies[0].Text)
	assert.Equal(t, leadcapture.StateAwaitingName, turn.LeadState)
	assert.Equal(t, "Digite seu nome completo...", turn.Placeholder)

	turn, err = s.Send("Ana")
	require.NoError(t, err)
	assert.Equal(t, LeadStepDelay, turn.Delay)
	assert.False(t, turn.Typing)
	assert.Contains(t, turn.Replies[0].Text, "Perfeito, Ana!")

	turn, err = s.Send("Padaria")
	require.NoError(t, err)
	assert.Contains(t, turn.Replies[0].Text, "Excelente!")

	turn, err = s.Send("site")
	require.NoError(t, err)
	require.NotNil(t, turn.Handoff)
	assert.Equal(t, time.Second, turn.Handoff.Delay)
	text, err := whatsapp.Text(turn.Handoff.Link)
	require.NoError(t, err)
	assert.Contains(t, text, "Nome: Ana")
	assert.Contains(t, text, "Projeto/Empresa: Padaria")
	assert.Contains(t, text, "Necessidade: site")
	assert.Equal(t, leadcapture.StateIdle, s.LeadState())

	turn, err = s.Send("oi")
	require.NoError(t, err)
	assert.Equal(t, responder.CategoryGreeting, turn.Category)
}

func TestSend_LeadAnswerIsNotClassified(t *testing.T) {
	s := newTestSession()
	_, err := s.Send("quero um orçamento")
	require.NoError(t, err)

	turn, err := s.Send("oi")
	require.NoError(t, err)
	assert.Empty(t, turn.Category)
	assert.Contains(t, turn.Replies[0].Text, "Perfeito, oi!")
}

func TestClear_RestoresWelcomeAndAbandonsLead(t *testing.T) {
	s := newTestSession()
	_, _ = s.Send("quanto custa?")
	_, _ = s.Send("Ana")

	history := s.Clear()
	require.Len(t, history, 1)
	assert.Equal(t, int64(1), history[0].ID)
	assert.Equal(t, leadcapture.StateIdle, s.LeadState())
	assert.Equal(t, "Digite sua mensagem...", s.Placeholder())

	turn, err := s.Send("Padaria")
	require.NoError(t, err)
	assert.Nil(t, turn.Handoff)
	assert.Equal(t, int64(2), turn.User.ID)
}

func TestSend_MessageIDsIncrease(t *testing.T) {
	s := newTestSession()
	_, _ = s.Send("oi")
	_, _ = s.Send("prazo")
	var last int64
	for _, m := range s.History() {
		assert.Greater(t, m.ID, last)
		last = m.ID
	}
}

func TestQuickReplies(t *testing.T) {
	s := newTestSession()
	replies := s.QuickReplies()
	require.Len(t, replies, 8)

	turn, err := s.Send(replies[5])
	require.NoError(t, err)
	assert.Equal(t, responder.CategoryPricing, turn.Category)

	replies[0] = "changed"
	assert.Equal(t, "👋 Sobre a Norte Digital", QuickReplies()[0])
}

func TestContactLink(t *testing.T) {
	link, err := newTestSession().ContactLink()
	require.NoError(t, err)
	text, err := whatsapp.Text(link)
	require.NoError(t, err)
	assert.Equal(t, whatsapp.ContactMessage, text)
	assert.Contains(t, link, whatsapp.DefaultNumber)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newTestSession()
	b := newTestSession()
	_, _ = a.Send("quanto custa?")
	assert.Equal(t, leadcapture.StateAwaitingName, a.LeadState())
	assert.Equal(t, leadcapture.StateIdle, b.LeadState())
	assert.Len(t, b.History(), 1)
}
