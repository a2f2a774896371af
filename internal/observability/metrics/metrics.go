package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "pagebot"

// ChatMetrics exposes counters for the demo, chat, guide and contact flows.
type ChatMetrics struct {
	chatRepliesTotal  *prometheus.CounterVec
	leadHandoffsTotal prometheus.Counter
	contactTotal      *prometheus.CounterVec
	playbackEvents    *prometheus.CounterVec
	guideActionsTotal *prometheus.CounterVec
	activeStreams     *prometheus.GaugeVec
	chatReplyLatency  prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		chatRepliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Chat replies by responder category",
		}, []string{"category"}),
		leadHandoffsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "lead_handoffs_total",
			Help:      "Completed budget flows handed off to WhatsApp",
		}),
		contactTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"status"}),
		playbackEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "playback",
			Name:      "events_total",
			Help:      "Demo playback events streamed to clients",
		}, []string{"kind"}),
		guideActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "guide",
			Name:      "actions_total",
			Help:      "Section guide option clicks",
		}, []string{"action"}),
		activeStreams: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "active_streams",
			Help:      "Open websocket streams",
		}, []string{"stream"}),
		chatReplyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "reply_seconds",
			Help:      "Time spent computing a chat turn",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.chatRepliesTotal,
		m.leadHandoffsTotal,
		m.contactTotal,
		m.playbackEvents,
		m.guideActionsTotal,
		m.activeStreams,
		m.chatReplyLatency,
	)
	return m
}

func (m *ChatMetrics) ObserveChatReply(category string, seconds float64) {
	if m == nil {
		return
	}
	if category == "" {
		category = "lead_capture"
	}
	m.chatRepliesTotal.WithLabelValues(category).Inc()
	m.chatReplyLatency.Observe(seconds)
}

func (m *ChatMetrics) ObserveLeadHandoff() {
	if m == nil {
		return
	}
	m.leadHandoffsTotal.Inc()
}

func (m *ChatMetrics) ObserveContact(status string) {
	if m == nil {
		return
	}
	m.contactTotal.WithLabelValues(status).Inc()
}

func (m *ChatMetrics) ObservePlaybackEvent(kind string) {
	if m == nil {
		return
	}
	m.playbackEvents.WithLabelValues(kind).Inc()
}

func (m *ChatMetrics) ObserveGuideAction(action string) {
	if m == nil {
		return
	}
	m.guideActionsTotal.WithLabelValues(action).Inc()
}

// StreamOpened increments the open stream gauge; call StreamClosed when done.
func (m *ChatMetrics) StreamOpened(stream string) {
	if m == nil {
		return
	}
	m.activeStreams.WithLabelValues(stream).Inc()
}

func (m *ChatMetrics) StreamClosed(stream string) {
	if m == nil {
		return
	}
	m.activeStreams.WithLabelValues(stream).Dec()
}
