// Package clock schedules one-shot timer messages for Bubbletea models.
//
// tea.Tick cannot be cancelled: once the command is running it sleeps for
// the full duration and always delivers its message. Components that must
// release every timer on teardown (typewriter reveals, carousel rotation,
// resume timers, scroll animation) schedule through a Scheduler instead,
// which hands back a Timer alongside the command.
package clock

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer is a handle to a scheduled message.
type Timer interface {
	// Stop prevents the timer from delivering its message. It returns
	// true if the call stopped the timer, false if the timer already
	// fired or was already stopped.
	Stop() bool
}

// Scheduler creates cancellable timer commands.
type Scheduler interface {
	// Schedule returns a command that delivers fn(now) after d, and the
	// Timer controlling it. The command may be nil when the scheduler
	// delivers messages by other means (see clocktest.Fake).
	Schedule(d time.Duration, fn func(time.Time) tea.Msg) (tea.Cmd, Timer)
}

// Real is the production Scheduler backed by time.Timer.
type Real struct{}

// Schedule implements Scheduler.
func (Real) Schedule(d time.Duration, fn func(time.Time) tea.Msg) (tea.Cmd, Timer) {
	t := &realTimer{stop: make(chan struct{})}
	cmd := func() tea.Msg {
		tm := time.NewTimer(d)
		defer tm.Stop()
		select {
		case now := <-tm.C:
			if t.fire() {
				return fn(now)
			}
			return nil
		case <-t.stop:
			return nil
		}
	}
	return cmd, t
}

const (
	timerPending = iota
	timerFired
	timerStopped
)

type realTimer struct {
	mu    sync.Mutex
	state int
	stop  chan struct{}
}

func (t *realTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != timerPending {
		return false
	}
	t.state = timerStopped
	close(t.stop)
	return true
}

// fire transitions the timer to fired. It reports false if the timer was
// stopped while the command was waiting.
func (t *realTimer) fire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != timerPending {
		return false
	}
	t.state = timerFired
	return true
}

// Stop stops t if it is non-nil. It is the nil-safe form used by
// components that keep optional timer handles.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
