package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChangeFeedMetrics tracks the realtime change feed reconciler.
type ChangeFeedMetrics struct {
	received  prometheus.Counter
	coalesced prometheus.Counter
	broadcast prometheus.Counter
}

// NewChangeFeedMetrics registers change feed counters on the provided registerer.
func NewChangeFeedMetrics(reg prometheus.Registerer) *ChangeFeedMetrics {
	if reg == nil {
		return &ChangeFeedMetrics{}
	}
	received := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "changefeed_events_received_total",
		Help: "Raw row-change events received from the pub/sub channel.",
	})
	coalesced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "changefeed_events_coalesced_total",
		Help: "Events absorbed into an already pending refetch signal.",
	})
	broadcast := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "changefeed_broadcasts_total",
		Help: "Refetch signals fanned out to connected clients.",
	})
	reg.MustRegister(received, coalesced, broadcast)
	return &ChangeFeedMetrics{received: received, coalesced: coalesced, broadcast: broadcast}
}

func (m *ChangeFeedMetrics) IncReceived() {
	if m == nil || m.received == nil {
		return
	}
	m.received.Inc()
}

func (m *ChangeFeedMetrics) IncCoalesced() {
	if m == nil || m.coalesced == nil {
		return
	}
	m.coalesced.Inc()
}

func (m *ChangeFeedMetrics) IncBroadcast() {
	if m == nil || m.broadcast == nil {
		return
	}
	m.broadcast.Inc()
}
