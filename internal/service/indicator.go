package service

import (
	"sync"
	"time"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/store"
)

// DefaultSaveIndicatorDelay is how long the saving indicator stays on after
// the most recent write.
const DefaultSaveIndicatorDelay = 800 * time.Millisecond

// SaveIndicator is a debounced "saving" flag. Every Touch turns it on and
// restarts the countdown; it turns off delay after the last Touch.
// It reflects that a write happened recently, not that a write is in flight.
type SaveIndicator struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	status domain.SaveStatus
}

// NewSaveIndicator returns an idle indicator. A non-positive delay uses
// DefaultSaveIndicatorDelay.
func NewSaveIndicator(delay time.Duration) *SaveIndicator {
	if delay <= 0 {
		delay = DefaultSaveIndicatorDelay
	}
	return &SaveIndicator{delay: delay}
}

// Touch turns the indicator on and restarts the countdown.
func (i *SaveIndicator) Touch() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.status.Saving = true
	i.gen++
	gen := i.gen
	if i.timer != nil {
		i.timer.Stop()
	}
	i.timer = time.AfterFunc(i.delay, func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		// A Touch that raced with this callback owns the flag now.
		if i.gen == gen {
			i.status.Saving = false
		}
	})
}

// Observe records a store write and touches the indicator. It is meant to be
// registered with store.WithWriteObserver.
func (i *SaveIndicator) Observe(ev store.WriteEvent) {
	i.mu.Lock()
	if ev.Err != nil {
		i.status.LastError = ev.Err.Error()
	} else {
		i.status.LastError = ""
		i.status.LastSavedAt = ev.At
		i.status.Revision = ev.Revision
	}
	i.mu.Unlock()
	i.Touch()
}

// Status returns the current indicator state.
func (i *SaveIndicator) Status() domain.SaveStatus {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.status
}

// Stop cancels a pending countdown, leaving the flag as it is.
func (i *SaveIndicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.timer != nil {
		i.timer.Stop()
	}
}
