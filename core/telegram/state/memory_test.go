package state

import (
	"testing"
	"time"
)

func TestGetCreatesIdleSession(t *testing.T) {
	m := NewMemoryManager(0)

	sess := m.Get(42)
	if sess.Step != StateIdle {
		t.Fatalf("fresh session step = %s, expected %s", sess.Step, StateIdle)
	}
	if len(sess.Scratch) != 0 {
		t.Fatalf("fresh session scratch not empty: %v", sess.Scratch)
	}

	// Reads must not mutate stored state.
	sess.Scratch["leak"] = true
	again := m.Get(42)
	if again.Step != StateIdle || len(again.Scratch) != 0 {
		t.Fatalf("repeated Get not idempotent: %+v", again)
	}
}

func TestMergeScratchKeepsUntouchedKeys(t *testing.T) {
	m := NewMemoryManager(0)
	m.MergeScratch(7, map[string]interface{}{"a": 1, "b": "x"})
	m.MergeScratch(7, map[string]interface{}{"b": "y"})

	sess := m.Get(7)
	if sess.Scratch["a"] != 1 {
		t.Fatalf("untouched key lost: %v", sess.Scratch)
	}
	if sess.Scratch["b"] != "y" {
		t.Fatalf("merged key not updated: %v", sess.Scratch)
	}
}

func TestResetClearsStepAndScratch(t *testing.T) {
	m := NewMemoryManager(0)
	m.SetStep(9, State("awaiting_item_code"))
	m.MergeScratch(9, map[string]interface{}{"code": "abc"})

	m.Reset(9)

	sess := m.Get(9)
	if sess.Step != StateIdle {
		t.Fatalf("step after reset = %s", sess.Step)
	}
	if len(sess.Scratch) != 0 {
		t.Fatalf("scratch after reset = %v", sess.Scratch)
	}
	if m.InProgress(9) {
		t.Fatal("InProgress true after reset")
	}
}

func TestStepForUnknownUserIsIdle(t *testing.T) {
	m := NewMemoryManager(0)
	if st := m.Step(1234); st != StateIdle {
		t.Fatalf("unknown user step = %s", st)
	}
	if m.InProgress(1234) {
		t.Fatal("unknown user reported in progress")
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	m := NewMemoryManager(time.Hour)
	m.SetStep(1, State("awaiting_item_code"))
	m.SetStep(2, State("awaiting_item_title"))

	if n := m.Sweep(time.Now()); n != 0 {
		t.Fatalf("fresh sessions evicted: %d", n)
	}
	if n := m.Sweep(time.Now().Add(2 * time.Hour)); n != 2 {
		t.Fatalf("expected 2 evictions, got %d", n)
	}
	if st := m.Step(1); st != StateIdle {
		t.Fatalf("evicted session step = %s", st)
	}
}

func TestSweepDisabledWithZeroTTL(t *testing.T) {
	m := NewMemoryManager(0)
	m.SetStep(5, State("awaiting_channel_info"))
	if n := m.Sweep(time.Now().Add(1000 * time.Hour)); n != 0 {
		t.Fatalf("sweep with zero ttl evicted %d", n)
	}
}
