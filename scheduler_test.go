package mindmap

import (
	"testing"
	"time"
)

func TestSchedulerRunsDueTasks(t *testing.T) {
	var s Scheduler
	var ran []string
	s.After(100*time.Millisecond, func() { ran = append(ran, "b") })
	s.After(50*time.Millisecond, func() { ran = append(ran, "a") })
	s.After(time.Second, func() { ran = append(ran, "late") })

	s.Advance(0.04)
	if len(ran) != 0 {
		t.Fatalf("ran %v before due", ran)
	}
	s.Advance(0.1)
	if !equalStrings(ran, []string{"a", "b"}) {
		t.Errorf("ran = %v, want [a b]", ran)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	ran := false
	id := s.After(10*time.Millisecond, func() { ran = true })
	if !s.Pending(id) {
		t.Fatal("task not pending")
	}
	s.Cancel(id)
	s.Cancel(id)
	s.Cancel(12345)
	if s.Pending(id) {
		t.Error("task still pending after Cancel")
	}
	s.Advance(1)
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestSchedulerRescheduleWaitsForNextAdvance(t *testing.T) {
	var s Scheduler
	count := 0
	var tick func()
	tick = func() {
		count++
		s.After(0, tick)
	}
	s.After(0, tick)

	s.Advance(0)
	if count != 1 {
		t.Fatalf("count = %d after first Advance, want 1", count)
	}
	s.Advance(0)
	if count != 2 {
		t.Errorf("count = %d after second Advance, want 2", count)
	}
}

func TestSchedulerTaskCancelsAnother(t *testing.T) {
	var s Scheduler
	ran := false
	var victim TaskID
	s.After(10*time.Millisecond, func() { s.Cancel(victim) })
	victim = s.After(20*time.Millisecond, func() { ran = true })

	s.Advance(0.05)
	if ran {
		t.Error("task cancelled by an earlier task still ran")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestSchedulerIDsNonZero(t *testing.T) {
	var s Scheduler
	if id := s.After(0, func() {}); id == 0 {
		t.Error("issued zero TaskID")
	}
}
