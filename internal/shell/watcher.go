package shell

import (
	"context"
	"sync/atomic"
	"time"
)

// PollInterval is how often a watcher compares the clock to the expiry.
const PollInterval = time.Second

// ExpiryWatcher polls the clock and reports the first moment a page
// expires. Once expired it stays expired.
type ExpiryWatcher struct {
	expiresAt time.Time
	interval  time.Duration
	now       func() time.Time
	expired   atomic.Bool
}

// NewExpiryWatcher returns a watcher for expiresAt polling every second.
func NewExpiryWatcher(expiresAt time.Time) *ExpiryWatcher {
	return &ExpiryWatcher{expiresAt: expiresAt, interval: PollInterval, now: time.Now}
}

// SetClock replaces the time source and poll interval. Call it before
// Watch. A nil now or non-positive interval keeps the current one.
func (w *ExpiryWatcher) SetClock(now func() time.Time, interval time.Duration) {
	if now != nil {
		w.now = now
	}
	if interval > 0 {
		w.interval = interval
	}
}

// Expired reports whether the watcher has seen the expiry.
func (w *ExpiryWatcher) Expired() bool {
	return w.expired.Load()
}

func (w *ExpiryWatcher) check() bool {
	if w.expired.Load() {
		return true
	}
	if !w.now().Before(w.expiresAt) {
		w.expired.Store(true)
		return true
	}
	return false
}

// Watch starts polling. The returned channel receives exactly one value
// when the page expires and is then closed. Cancelling ctx stops the
// watcher and closes the channel without a value.
func (w *ExpiryWatcher) Watch(ctx context.Context) <-chan State {
	out := make(chan State, 1)
	go func() {
		defer close(out)
		if w.check() {
			out <- Expired
			return
		}
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if w.check() {
					out <- Expired
					return
				}
			}
		}
	}()
	return out
}
