package webchat

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/websocket"

	"github.com/nortedigital/pagebot/internal/chat"
	"github.com/nortedigital/pagebot/internal/leadcapture"
	"github.com/nortedigital/pagebot/internal/playback"
)

const (
	streamPlayback = "playback"
	streamChat     = "chat"
	maxSpeed       = 50.0
)

// InboundMessage is a client frame on the chat stream.
type InboundMessage struct {
	Type string `json:"type"` // "message", "clear", "ping"
	Text string `json:"text,omitempty"`
}

// ChatFrame is a server frame on the chat stream.
type ChatFrame struct {
	Type        string            `json:"type"` // "session", "history", "typing", "message", "handoff", "error", "pong"
	SessionID   string            `json:"session_id,omitempty"`
	Typing      bool              `json:"typing,omitempty"`
	Message     *ChatMessage      `json:"message,omitempty"`
	Messages    []ChatMessage     `json:"messages,omitempty"`
	Handoff     *Handoff          `json:"handoff,omitempty"`
	LeadState   leadcapture.State `json:"lead_state,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Text        string            `json:"text,omitempty"`
}

// HandlePlaybackStream upgrades to a websocket and streams the demo
// conversation until the client goes away. ?speed= scales every delay.
func (h *Handler) HandlePlaybackStream(w http.ResponseWriter, r *http.Request) {
	clock := h.clock
	if speed, err := strconv.ParseFloat(r.URL.Query().Get("speed"), 64); err == nil && speed > 0 {
		clock = playback.ScaledClock{Base: h.clock, Factor: min(speed, maxSpeed)}
	}
	websocket.Handler(func(conn *websocket.Conn) {
		h.servePlayback(conn, r, clock)
	}).ServeHTTP(w, r)
}

func (h *Handler) servePlayback(conn *websocket.Conn, r *http.Request, clock playback.Clock) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	h.metrics.StreamOpened(streamPlayback)
	defer h.metrics.StreamClosed(streamPlayback)

	player := playback.NewPlayer(h.script,
		playback.WithClock(clock),
		playback.WithCooldown(h.cooldown),
		playback.WithLogger(h.logger),
		playback.WithObserver(func(ev playback.Event) {
			h.metrics.ObservePlaybackEvent(string(ev.Kind))
			if err := websocket.JSON.Send(conn, h.playbackFrame(ev)); err != nil {
				cancel()
			}
		}),
	)

	state := player.Snapshot()
	if err := websocket.JSON.Send(conn, PlaybackFrame{Type: "state", Step: state.Step, State: &state}); err != nil {
		return
	}

	go func() {
		defer cancel()
		for {
			var msg InboundMessage
			if err := websocket.JSON.Receive(conn, &msg); err != nil {
				return
			}
			if msg.Type == "ping" {
				_ = websocket.JSON.Send(conn, PlaybackFrame{Type: "pong"})
			}
		}
	}()

	h.logger.Debug("webchat: playback stream opened", "remote", r.RemoteAddr)
	if err := player.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Warn("webchat: playback stream ended", "error", err)
	}
}

func (h *Handler) playbackFrame(ev playback.Event) PlaybackFrame {
	frame := PlaybackFrame{
		Type:         string(ev.Kind),
		Step:         ev.Step,
		Typing:       ev.Typing,
		ImageLoading: ev.ImageLoading,
		Message:      ev.Message,
	}
	if ev.Message != nil {
		if block, ok := h.renderer.Render(*ev.Message); ok {
			frame.Block = &block
		}
	}
	return frame
}

// HandleChatStream upgrades to a websocket for the chat assistant. The server
// applies the typing and handoff delays before sending each frame.
func (h *Handler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveChat(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveChat(conn *websocket.Conn, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	h.metrics.StreamOpened(streamChat)
	defer h.metrics.StreamClosed(streamChat)

	s := h.sessions.GetOrCreate(sessionID(r, ""))
	logger := h.logger.With("session_id", s.ID())

	send := func(f ChatFrame) bool {
		if err := websocket.JSON.Send(conn, f); err != nil {
			cancel()
			return false
		}
		return true
	}

	if !send(ChatFrame{Type: "session", SessionID: s.ID(), LeadState: s.LeadState(), Placeholder: s.Placeholder()}) {
		return
	}
	if !send(ChatFrame{Type: "history", Messages: chatMessageViews(s.History())}) {
		return
	}

	inbound := make(chan InboundMessage, 8)
	go func() {
		defer cancel()
		defer close(inbound)
		for {
			var msg InboundMessage
			if err := websocket.JSON.Receive(conn, &msg); err != nil {
				logger.Debug("webchat: chat stream closed", "error", err)
				return
			}
			select {
			case inbound <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-inbound:
			if !ok {
				return
			}
			switch msg.Type {
			case "ping":
				send(ChatFrame{Type: "pong"})
			case "clear":
				send(ChatFrame{Type: "history", Messages: chatMessageViews(s.Clear()), LeadState: s.LeadState(), Placeholder: s.Placeholder()})
			case "message":
				if strings.TrimSpace(msg.Text) == "" {
					continue
				}
				if err := h.playTurn(ctx, s, msg.Text, send); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("webchat: chat turn failed", "error", err)
					send(ChatFrame{Type: "error", Text: "Desculpe, algo deu errado. Tente novamente."})
				}
			}
		}
	}
}

func (h *Handler) playTurn(ctx context.Context, s *chat.Session, text string, send func(ChatFrame) bool) error {
	start := time.Now()
	turn, err := s.Send(text)
	if err != nil {
		return err
	}
	h.observeTurn(turn, time.Since(start))

	user := chatMessageView(turn.User)
	send(ChatFrame{Type: "message", Message: &user})
	if turn.Typing {
		send(ChatFrame{Type: "typing", Typing: true})
	}
	if err := h.wait(ctx, turn.Delay); err != nil {
		return err
	}
	for _, m := range turn.Replies {
		view := chatMessageView(m)
		send(ChatFrame{Type: "message", Message: &view, LeadState: turn.LeadState, Placeholder: turn.Placeholder})
	}
	if turn.Handoff == nil {
		return nil
	}
	if err := h.wait(ctx, turn.Handoff.Delay); err != nil {
		return err
	}
	send(ChatFrame{Type: "handoff", Handoff: &Handoff{
		Link:    turn.Handoff.Link,
		DelayMS: turn.Handoff.Delay.Milliseconds(),
		Budget:  turn.Handoff.Budget,
	}})
	return nil
}
