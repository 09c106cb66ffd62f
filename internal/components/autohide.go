package components

import (
	"sync"
	"time"
)

// AutoHideDelay is how long a triggered banner stays visible in display mode.
const AutoHideDelay = 3 * time.Second

// Timer is the subset of *time.Timer the machines depend on.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. It matches time.AfterFunc so tests can
// substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// AutoHideState is the state of an AutoHide machine.
type AutoHideState int

const (
	Idle AutoHideState = iota
	Revealed
)

func (s AutoHideState) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "idle"
}

// AutoHide reveals a banner on trigger and hides it again after
// AutoHideDelay. Re-triggering cancels the pending hide and starts a new
// one. In editable mode the banner toggles and never hides on its own, so
// the author can edit the revealed text.
type AutoHide struct {
	mu       sync.Mutex
	state    AutoHideState
	editable bool
	after    AfterFunc
	delay    time.Duration
	timer    Timer
	// gen invalidates hide callbacks that fire after being superseded.
	gen uint64
}

// NewAutoHide returns an idle machine. A nil after uses time.AfterFunc.
func NewAutoHide(editable bool, after AfterFunc) *AutoHide {
	if after == nil {
		after = realAfterFunc
	}
	return &AutoHide{editable: editable, after: after, delay: AutoHideDelay}
}

// Trigger handles the call-to-action and returns the resulting state.
func (a *AutoHide) Trigger() AutoHideState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.editable {
		if a.state == Revealed {
			a.state = Idle
		} else {
			a.state = Revealed
		}
		return a.state
	}

	a.cancelLocked()
	a.state = Revealed
	gen := a.gen
	a.timer = a.after(a.delay, func() { a.hide(gen) })
	return a.state
}

func (a *AutoHide) hide(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		return
	}
	a.state = Idle
	a.timer = nil
}

// cancelLocked stops the pending timer and invalidates its callback.
func (a *AutoHide) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
}

// Current returns the current state.
func (a *AutoHide) Current() AutoHideState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Pending reports whether a hide is scheduled.
func (a *AutoHide) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

func (a *AutoHide) Kind() BehaviorKind { return AutoHideBehavior }
func (a *AutoHide) State() string      { return a.Current().String() }

// Stop cancels any pending hide. The visible state is left as is.
func (a *AutoHide) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}
