package webchat

import (
	"time"

	"github.com/nortedigital/pagebot/internal/chat"
	"github.com/nortedigital/pagebot/internal/contact"
	"github.com/nortedigital/pagebot/internal/guide"
	"github.com/nortedigital/pagebot/internal/leadcapture"
	"github.com/nortedigital/pagebot/internal/playback"
	"github.com/nortedigital/pagebot/internal/render"
	"github.com/nortedigital/pagebot/internal/responder"
	"github.com/nortedigital/pagebot/internal/script"
	"github.com/nortedigital/pagebot/internal/whatsapp"
)

// ChatMessage is a history entry with its display block.
type ChatMessage struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Sender    chat.Sender  `json:"sender"`
	Timestamp string       `json:"timestamp"`
	Block     render.Block `json:"block"`
}

// Handoff tells the client to open Link after DelayMS.
type Handoff struct {
	Link    string          `json:"link"`
	DelayMS int64           `json:"delay_ms"`
	Budget  whatsapp.Budget `json:"budget"`
}

// TurnResponse is the reply to one chat message.
type TurnResponse struct {
	SessionID   string             `json:"session_id"`
	User        ChatMessage        `json:"user"`
	Replies     []ChatMessage      `json:"replies"`
	DelayMS     int64              `json:"delay_ms"`
	Typing      bool               `json:"typing"`
	Category    responder.Category `json:"category,omitempty"`
	LeadState   leadcapture.State  `json:"lead_state"`
	Placeholder string             `json:"placeholder"`
	Handoff     *Handoff           `json:"handoff,omitempty"`
}

// SessionResponse describes a (new or cleared) chat session.
type SessionResponse struct {
	SessionID    string        `json:"session_id"`
	Messages     []ChatMessage `json:"messages"`
	QuickReplies []string      `json:"quick_replies"`
	Placeholder  string        `json:"placeholder"`
	ContactLink  string        `json:"contact_link"`
}

// StepView is a script step with its delay in milliseconds.
type StepView struct {
	script.Step
	DelayMS int64 `json:"delay_ms"`
}

// ScriptResponse is the full demo definition.
type ScriptResponse struct {
	Steps           []StepView           `json:"steps"`
	Services        []script.ServiceInfo `json:"services"`
	TotalDurationMS int64                `json:"total_duration_ms"`
	CooldownMS      int64                `json:"cooldown_ms"`
}

// PlaybackFrame is one websocket frame of the demo stream.
type PlaybackFrame struct {
	Type         string            `json:"type"` // "state", "typing", "message", "reset", "error"
	Step         int               `json:"step"`
	Typing       bool              `json:"typing,omitempty"`
	ImageLoading bool              `json:"image_loading,omitempty"`
	Message      *playback.Message `json:"message,omitempty"`
	Block        *render.Block     `json:"block,omitempty"`
	State        *playback.State   `json:"state,omitempty"`
	Text         string            `json:"text,omitempty"`
}

// GuideView is a section view with its delay in milliseconds.
type GuideView struct {
	guide.View
	DelayMS int64 `json:"delay_ms"`
}

// GuideReply is an action reply with its delay in milliseconds.
type GuideReply struct {
	guide.Reply
	DelayMS int64 `json:"delay_ms"`
}

// ContactResponse is an outcome with its delays in milliseconds.
type ContactResponse struct {
	contact.Outcome
	FallbackDelayMS int64 `json:"fallback_delay_ms,omitempty"`
	ResetAfterMS    int64 `json:"reset_after_ms,omitempty"`
}

func chatMessageView(m chat.Message) ChatMessage {
	return ChatMessage{
		ID:        m.ID,
		Text:      m.Text,
		Sender:    m.Sender,
		Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
		Block:     render.Text(m.Text, m.Sender == chat.SenderBot),
	}
}

func chatMessageViews(msgs []chat.Message) []ChatMessage {
	out := make([]ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chatMessageView(m))
	}
	return out
}

func turnResponse(sessionID string, t chat.Turn) TurnResponse {
	resp := TurnResponse{
		SessionID:   sessionID,
		User:        chatMessageView(t.User),
		Replies:     chatMessageViews(t.Replies),
		DelayMS:     t.Delay.Milliseconds(),
		Typing:      t.Typing,
		Category:    t.Category,
		LeadState:   t.LeadState,
		Placeholder: t.Placeholder,
	}
	if t.Handoff != nil {
		resp.Handoff = &Handoff{
			Link:    t.Handoff.Link,
			DelayMS: t.Handoff.Delay.Milliseconds(),
			Budget:  t.Handoff.Budget,
		}
	}
	return resp
}
