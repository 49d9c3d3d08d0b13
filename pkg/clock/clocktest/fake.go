// Package clocktest provides a deterministic clock.Scheduler for tests.
package clocktest

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/folio/pkg/clock"
)

// Fake is a manually advanced scheduler. Scheduled timers never run on
// their own: the test moves time forward with Advance or AdvanceFunc and
// receives the messages of every timer that came due.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	f     *Fake
	due   time.Time
	seq   int
	fn    func(time.Time) tea.Msg
	state int
}

const (
	pending = iota
	fired
	stopped
)

// NewFake returns a Fake starting at now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Schedule implements clock.Scheduler. The returned command is always nil;
// messages are delivered by Advance and AdvanceFunc.
func (f *Fake) Schedule(d time.Duration, fn func(time.Time) tea.Msg) (tea.Cmd, clock.Timer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{f: f, due: f.now.Add(d), seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return nil, t
}

func (t *fakeTimer) Stop() bool {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	if t.state != pending {
		return false
	}
	t.state = stopped
	return true
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if t.state == pending {
			n++
		}
	}
	return n
}

// Advance moves time forward by d and returns the messages of all timers
// that came due, in due order. Timers scheduled while handling those
// messages are not considered; use AdvanceFunc for chained timers.
func (f *Fake) Advance(d time.Duration) []tea.Msg {
	var msgs []tea.Msg
	f.AdvanceFunc(d, func(msg tea.Msg) {
		msgs = append(msgs, msg)
	})
	return msgs
}

// AdvanceFunc moves time forward by d. Each due timer fires in order and
// its message is passed to deliver before the next timer is considered,
// so timers scheduled by deliver fire too if they fall inside the window.
func (f *Fake) AdvanceFunc(d time.Duration, deliver func(tea.Msg)) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.nextDueLocked(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		next.state = fired
		f.now = next.due
		now := f.now
		f.compactLocked()
		f.mu.Unlock()

		if msg := next.fn(now); msg != nil && deliver != nil {
			deliver(msg)
		}
	}
}

func (f *Fake) nextDueLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.timers {
		if t.state != pending || t.due.After(target) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// compactLocked drops timers that can no longer fire.
func (f *Fake) compactLocked() {
	kept := f.timers[:0]
	for _, t := range f.timers {
		if t.state == pending {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(f.timers); i++ {
		f.timers[i] = nil
	}
	f.timers = kept
}
