package status

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/netwall/internal/bus"
)

// State represents an application runtime state.
type State string

const (
	Booting  State = "BOOTING"
	Ready    State = "READY"
	Stopping State = "STOPPING"
	Stopped  State = "STOPPED"
	Error    State = "ERROR"
)

// KindStatusChanged is published on every successful transition.
const KindStatusChanged = "app.status_changed"

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	Booting:  {Ready, Stopping, Error},
	Ready:    {Stopping, Error},
	Stopping: {Stopped, Error},
	Stopped:  {},
	Error:    {Stopping},
}

// Machine tracks and enforces application state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Booting state.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Booting,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Publish(bus.NewEvent(KindStatusChanged, StatusChange{From: from, To: to}))
	return nil
}

// StatusChange is the payload for status change events.
type StatusChange struct {
	From State
	To   State
}
