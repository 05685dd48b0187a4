package bus

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event represents a domain event published on the bus.
// Kind is dot-namespaced, e.g. "chat.created".
type Event struct {
	ID        string
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent returns an event of the given kind stamped with a fresh id and the
// current time.
func NewEvent(kind string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// Namespace returns the part of Kind before the first dot.
func (e Event) Namespace() string {
	ns, _, _ := strings.Cut(e.Kind, ".")
	return ns
}
