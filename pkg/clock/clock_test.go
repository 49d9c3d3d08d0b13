package clock

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type testMsg struct{ at time.Time }

func TestRealDeliversMessage(t *testing.T) {
	cmd, timer := Real{}.Schedule(time.Millisecond, func(now time.Time) tea.Msg {
		return testMsg{at: now}
	})
	if cmd == nil {
		t.Fatal("Schedule returned nil cmd")
	}
	msg := cmd()
	if _, ok := msg.(testMsg); !ok {
		t.Fatalf("cmd() = %T, want testMsg", msg)
	}
	if timer.Stop() {
		t.Error("Stop() after fire = true, want false")
	}
}

func TestRealStopBeforeFire(t *testing.T) {
	cmd, timer := Real{}.Schedule(time.Hour, func(now time.Time) tea.Msg {
		return testMsg{at: now}
	})
	if !timer.Stop() {
		t.Fatal("first Stop() = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("stopped timer delivered %T, want nil", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("stopped timer command did not return")
	}
}

func TestStopNilSafe(t *testing.T) {
	Stop(nil)
}
