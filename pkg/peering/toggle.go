package peering

import (
	"context"
	"sync"
)

// Toggle is the shared freeze flag: a two-state switch with change
// notification. Any number of goroutines may read or wait on it; by
// convention only the peering event processor flips it. Handler dispatch
// checks FreezeChecker before invoking resource handlers.
//
// Transitions are idempotent and waiters are woken by a closed-channel
// broadcast, never by polling.
type Toggle struct {
	mu      sync.Mutex
	on      bool
	changed chan struct{}
}

// FreezeChecker is the read-only view of the freeze flag handed to the
// dispatch engine.
type FreezeChecker interface {
	IsOn() bool
	IsOff() bool
	// WaitFor blocks until the flag reaches the wanted state or the context
	// is cancelled.
	WaitFor(ctx context.Context, on bool) error
}

// NewToggle returns a Toggle in the given initial state.
func NewToggle(on bool) *Toggle {
	return &Toggle{on: on, changed: make(chan struct{})}
}

func (t *Toggle) IsOn() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}

func (t *Toggle) IsOff() bool {
	return !t.IsOn()
}

// TurnOn switches the flag on. A no-op when already on.
func (t *Toggle) TurnOn() {
	t.set(true)
}

// TurnOff switches the flag off. A no-op when already off.
func (t *Toggle) TurnOff() {
	t.set(false)
}

func (t *Toggle) set(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.on == on {
		return
	}
	t.on = on
	close(t.changed)
	t.changed = make(chan struct{})
}

// WaitFor blocks until the flag reaches the wanted state or ctx is done.
func (t *Toggle) WaitFor(ctx context.Context, on bool) error {
	for {
		t.mu.Lock()
		if t.on == on {
			t.mu.Unlock()
			return nil
		}
		changed := t.changed
		t.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}
