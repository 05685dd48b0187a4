package activity

import (
	"context"
	"sync"

	"github.com/matheus3301/netwall/internal/bus"
	"github.com/matheus3301/netwall/internal/logging"
	"go.uber.org/zap"
)

// DefaultRecent is the number of recent events kept when none is configured.
const DefaultRecent = 32

// Stats is a point-in-time view of observed activity.
type Stats struct {
	Total  int
	ByKind map[string]int
	Recent []bus.Event // oldest first
}

// Engine tallies every event published on the bus and keeps a bounded ring
// of the most recent ones.
type Engine struct {
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	total  int
	byKind map[string]int
	recent []bus.Event
	next   int
	size   int
}

// NewEngine creates a new activity engine keeping up to recent events.
func NewEngine(b *bus.Bus, logger *zap.Logger, recent int) *Engine {
	if recent <= 0 {
		recent = DefaultRecent
	}
	return &Engine{
		bus:    b,
		logger: logging.OrNop(logger).Named("activity"),
		byKind: make(map[string]int),
		recent: make([]bus.Event, recent),
	}
}

// Start subscribes to all bus events.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	ch, unsub := e.bus.Subscribe("", 256)

	go func() {
		defer close(e.done)
		defer unsub()
		for {
			select {
			case evt := <-ch:
				e.Record(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine and waits for the subscriber goroutine to exit.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
		<-e.done
	}
}

// Record counts a single event.
func (e *Engine) Record(evt bus.Event) {
	e.mu.Lock()
	e.total++
	e.byKind[evt.Kind]++
	e.recent[e.next] = evt
	e.next = (e.next + 1) % len(e.recent)
	if e.size < len(e.recent) {
		e.size++
	}
	e.mu.Unlock()

	e.logger.Debug("event", zap.String("kind", evt.Kind), zap.String("event_id", evt.ID))
}

// Snapshot returns a copy of the current counters.
func (e *Engine) Snapshot() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Stats{
		Total:  e.total,
		ByKind: make(map[string]int, len(e.byKind)),
		Recent: make([]bus.Event, 0, e.size),
	}
	for k, v := range e.byKind {
		st.ByKind[k] = v
	}
	start := (e.next - e.size + len(e.recent)) % len(e.recent)
	for i := 0; i < e.size; i++ {
		st.Recent = append(st.Recent, e.recent[(start+i)%len(e.recent)])
	}
	return st
}
