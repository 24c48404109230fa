package events

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	"github.com/aceitestapia/fueltrack-backend/pkg/metrics"
)

// Signal tells a subscriber that inventory data changed and a refetch is
// due. Tables lists the affected tables, sorted, with duplicates collapsed.
type Signal struct {
	Tables []string `json:"tables"`
}

type statsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Hub is the single reconciler between raw row-change events and connected
// clients. Raw events are debounced: a burst of inserts within the window
// collapses into one cache invalidation and one broadcast, so every client
// refetches at most once per window.
type Hub struct {
	debounce time.Duration
	buffer   int
	stats    statsInvalidator
	metrics  *metrics.ChangeFeedMetrics
	logg     *logger.Logger

	mu          sync.Mutex
	subscribers map[chan Signal]struct{}
}

// HubParams bundles the dependencies required to build a hub.
type HubParams struct {
	Config  config.ChangeFeedConfig
	Stats   statsInvalidator
	Metrics *metrics.ChangeFeedMetrics
	Logger  *logger.Logger
}

// NewHub constructs the change feed hub.
func NewHub(params HubParams) (*Hub, error) {
	if params.Stats == nil {
		return nil, fmt.Errorf("stats invalidator is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	debounce := params.Config.DebounceWindow
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	buffer := params.Config.ClientBuffer
	if buffer <= 0 {
		buffer = 8
	}
	return &Hub{
		debounce:    debounce,
		buffer:      buffer,
		stats:       params.Stats,
		metrics:     params.Metrics,
		logg:        params.Logger,
		subscribers: make(map[chan Signal]struct{}),
	}, nil
}

// Subscribe registers a client channel. The returned cancel func must be
// called when the client disconnects. A slow client whose buffer is full
// misses intermediate signals, never blocks the hub.
func (h *Hub) Subscribe() (<-chan Signal, func()) {
	ch := make(chan Signal, h.buffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// SubscriberCount reports how many clients are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Run consumes raw change events until the context is canceled or the
// source closes. It owns the debounce timer: the first event of a burst
// arms it, later events within the window are absorbed, and when it fires
// the stats cache is invalidated once and one signal is fanned out.
func (h *Hub) Run(ctx context.Context, source <-chan ChangeEvent) {
	timer := time.NewTimer(h.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	pending := map[string]struct{}{}
	armed := false

	flush := func() {
		armed = false
		tables := make([]string, 0, len(pending))
		for table := range pending {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		pending = map[string]struct{}{}

		if err := h.stats.Invalidate(ctx); err != nil {
			h.logg.Error(ctx, "invalidate stats cache", err)
		}
		h.broadcast(Signal{Tables: tables})
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-source:
			if !ok {
				timer.Stop()
				return
			}
			h.metrics.IncReceived()
			pending[event.Table] = struct{}{}
			if armed {
				h.metrics.IncCoalesced()
				continue
			}
			armed = true
			timer.Reset(h.debounce)
		case <-timer.C:
			flush()
		}
	}
}

func (h *Hub) broadcast(signal Signal) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers {
		select {
		case ch <- signal:
		default:
		}
	}
	h.metrics.IncBroadcast()
}
