package guide

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnter_Sections(t *testing.T) {
	g := New()
	tests := []struct {
		section  string
		position Position
		delay    time.Duration
	}{
		{SectionHero, BottomRight, 2 * time.Second},
		{SectionServices, BottomLeft, time.Second},
		{SectionPortfolio, TopRight, 1500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			view, err := g.Enter(tt.section)
			require.NoError(t, err)
			assert.True(t, view.Visible)
			assert.Equal(t, tt.position, view.Position)
			assert.Equal(t, tt.delay, view.Delay)

			require.Len(t, view.Messages, 4)
			last := view.Messages[3]
			assert.Equal(t, "Como posso te ajudar hoje?", last.Text)
			assert.Len(t, last.Options, 3)
			for i, m := range view.Messages {
				assert.Equal(t, i, m.ID)
			}
		})
	}
}

func TestEnter_ContactHidesAgent(t *testing.T) {
	view, err := New().Enter(SectionContact)
	require.NoError(t, err)
	assert.False(t, view.Visible)
	assert.Empty(t, view.Messages)
}

func TestEnter_UnknownSection(t *testing.T) {
	_, err := New().Enter("footer")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestStart(t *testing.T) {
	msg := New().Start()
	assert.Contains(t, msg.Text, "Eu sou o Nori")
	require.Len(t, msg.Options, 3)
	assert.Equal(t, ActionOpenChat, msg.Options[0].Action)
}

func TestAct(t *testing.T) {
	g := New()
	for _, action := range []string{ActionExplainLP, ActionExplainSystems, ActionExplainEcommerce, ActionShowCases} {
		reply := g.Act(action)
		require.NotNil(t, reply.Message, action)
		assert.Equal(t, ThinkingDelay, reply.Delay)
		assert.False(t, reply.OpenChat)
		assert.NotEqual(t, defaultReply.Text, reply.Message.Text, action)
	}

	reply := g.Act(ActionOpenChat)
	assert.True(t, reply.OpenChat)
	assert.Nil(t, reply.Message)

	reply = g.Act("explain_pricing")
	require.NotNil(t, reply.Message)
	assert.Equal(t, defaultReply.Text, reply.Message.Text)
}

func TestAct_RepliesAreCopies(t *testing.T) {
	g := New()
	reply := g.Act(ActionExplainLP)
	reply.Message.Options[0].Text = "changed"
	assert.Equal(t, "Ver exemplos", g.Act(ActionExplainLP).Message.Options[0].Text)
}

func TestSections_PageOrder(t *testing.T) {
	sections := New().Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, SectionHero, sections[0].ID)
	assert.Equal(t, SectionPortfolio, sections[2].ID)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(ActionShowCases))
	assert.True(t, Known(ActionOpenChat))
	assert.False(t, Known("explain_pricing"))
}
