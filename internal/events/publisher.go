package events

import (
	"sync"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// Publisher receives game lifecycle events as they happen. Publish
// must not block: implementations that fan out to slow consumers
// are responsible for their own buffering.
type Publisher interface {
	Publish(event model.Event)
}

// Recorder captures published events in order, for tests
type Recorder struct {
	mu     sync.Mutex
	events []model.Event
}

// Publish records the event
func (r *Recorder) Publish(event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset clears the recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
