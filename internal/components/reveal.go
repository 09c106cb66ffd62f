package components

import "sync"

// Machine is the interaction state machine owned by a component instance.
type Machine interface {
	Kind() BehaviorKind
	// State names the current state for rendering.
	State() string
	// Stop releases any timer the machine holds. Safe to call repeatedly.
	Stop()
}

type static struct{}

func (static) Kind() BehaviorKind { return Static }
func (static) State() string      { return "idle" }
func (static) Stop()              {}

// RevealState is the state of a Reveal machine.
type RevealState int

const (
	Closed RevealState = iota
	Open
)

func (s RevealState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Reveal is a two-state toggle driven by a call-to-action button: an
// envelope, a gift box, a drawer. Toggling never touches field values, so
// an author can open and close it while editing without losing edits.
type Reveal struct {
	mu    sync.Mutex
	state RevealState
}

// NewReveal returns a closed Reveal.
func NewReveal() *Reveal { return &Reveal{} }

// Toggle flips the state and returns the new one.
func (r *Reveal) Toggle() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Open {
		r.state = Closed
	} else {
		r.state = Open
	}
	return r.state
}

// Current returns the current state.
func (r *Reveal) Current() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reveal) Kind() BehaviorKind { return RevealBehavior }
func (r *Reveal) State() string      { return r.Current().String() }
func (r *Reveal) Stop()              {}
