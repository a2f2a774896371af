package webchat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nortedigital/pagebot/internal/chat"
	"github.com/nortedigital/pagebot/internal/contact"
	"github.com/nortedigital/pagebot/internal/guide"
	"github.com/nortedigital/pagebot/internal/script"
)

const maxBodyBytes = 16 << 10

type messageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// HandleScript returns the demo steps and service catalogue.
func (h *Handler) HandleScript(w http.ResponseWriter, r *http.Request) {
	steps := h.script.Steps()
	views := make([]StepView, 0, len(steps))
	for _, st := range steps {
		views = append(views, StepView{Step: st, DelayMS: st.Wait().Milliseconds()})
	}
	writeJSON(w, http.StatusOK, ScriptResponse{
		Steps:           views,
		Services:        script.Services(),
		TotalDurationMS: h.script.TotalDuration().Milliseconds(),
		CooldownMS:      h.cooldown.Milliseconds(),
	})
}

// HandleCreateSession starts a chat session and returns the welcome state.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	writeJSON(w, http.StatusCreated, h.sessionResponse(s, s.History()))
}

// HandleMessage runs one chat turn. Unknown sessions are recreated so a client
// that outlived the idle timeout keeps working.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	id := sessionID(r, req.SessionID)
	s := h.sessions.GetOrCreate(id)

	start := time.Now()
	turn, err := s.Send(req.Text)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			http.Error(w, "message text is required", http.StatusBadRequest)
			return
		}
		h.logger.Error("webchat: chat turn failed", "session_id", s.ID(), "error", err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}
	h.observeTurn(turn, time.Since(start))

	w.Header().Set(SessionHeader, s.ID())
	writeJSON(w, http.StatusOK, turnResponse(s.ID(), turn))
}

// HandleClear resets a session back to the welcome message.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(s, s.Clear()))
}

// HandleHistory returns the session transcript.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(s, s.History()))
}

// HandleQuickReplies lists the suggestion chips.
func (h *Handler) HandleQuickReplies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"quick_replies": chat.QuickReplies()})
}

// HandleGuideStart returns the agent's introduction.
func (h *Handler) HandleGuideStart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.guide.Start())
}

// HandleGuideSection returns the agent's view for a page section.
func (h *Handler) HandleGuideSection(w http.ResponseWriter, r *http.Request) {
	view, err := h.guide.Enter(chi.URLParam(r, "section"))
	if err != nil {
		if errors.Is(err, guide.ErrUnknownSection) {
			http.Error(w, "unknown section", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load section", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, GuideView{View: view, DelayMS: view.Delay.Milliseconds()})
}

// HandleGuideAction answers an option click.
func (h *Handler) HandleGuideAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	reply := h.guide.Act(action)
	label := reply.Action
	if !guide.Known(label) {
		label = "other"
	}
	h.metrics.ObserveGuideAction(label)
	writeJSON(w, http.StatusOK, GuideReply{Reply: reply, DelayMS: reply.Delay.Milliseconds()})
}

// HandleContact relays the contact form. Validation and delivery problems are
// reported in the outcome, not as HTTP errors.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&sub); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	outcome := h.contact.Submit(r.Context(), sub)
	h.metrics.ObserveContact(string(outcome.Status))

	status := http.StatusOK
	if outcome.Status == contact.StatusInvalid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, ContactResponse{
		Outcome:         outcome,
		FallbackDelayMS: outcome.FallbackDelay.Milliseconds(),
		ResetAfterMS:    outcome.ResetAfter.Milliseconds(),
	})
}

func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	id := sessionID(r, "")
	if id == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return nil, false
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) sessionResponse(s *chat.Session, msgs []chat.Message) SessionResponse {
	link, err := s.ContactLink()
	if err != nil {
		h.logger.Warn("webchat: contact link unavailable", "error", err)
	}
	return SessionResponse{
		SessionID:    s.ID(),
		Messages:     chatMessageViews(msgs),
		QuickReplies: s.QuickReplies(),
		Placeholder:  s.Placeholder(),
		ContactLink:  link,
	}
}

func (h *Handler) observeTurn(t chat.Turn, took time.Duration) {
	h.metrics.ObserveChatReply(string(t.Category), took.Seconds())
	if t.Handoff != nil {
		h.metrics.ObserveLeadHandoff()
	}
}

// sessionID prefers the header, then the ?session query, then the body.
func sessionID(r *http.Request, body string) string {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.URL.Query().Get("session")); id != "" {
		return id
	}
	return strings.TrimSpace(body)
}
