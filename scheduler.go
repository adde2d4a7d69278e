package mindmap

import "time"

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID uint64

type task struct {
	id  TaskID
	due time.Duration
	fn  func()
}

// Scheduler runs callbacks after a delay measured in frame time. It is
// advanced from the update loop and never runs anything concurrently.
type Scheduler struct {
	now    time.Duration
	tasks  []task
	nextID TaskID
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, due: s.now + delay, fn: fn})
	return s.nextID
}

// Cancel removes a pending task. Cancelling an unknown or finished task is
// a no-op.
func (s *Scheduler) Cancel(id TaskID) {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			copy(s.tasks[i:], s.tasks[i+1:])
			s.tasks[len(s.tasks)-1] = task{}
			s.tasks = s.tasks[:len(s.tasks)-1]
			return
		}
	}
}

// Pending reports whether id is still scheduled.
func (s *Scheduler) Pending(id TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			return true
		}
	}
	return false
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance moves the clock forward by dt seconds and runs every task that
// became due, earliest first. Tasks scheduled by a running task wait for a
// later Advance; tasks cancelled by a running task do not run.
func (s *Scheduler) Advance(dt float32) {
	s.now += time.Duration(float64(dt) * float64(time.Second))
	last := s.nextID
	for {
		next := -1
		for i, t := range s.tasks {
			if t.id > last || t.due > s.now {
				continue
			}
			if next < 0 || t.due < s.tasks[next].due {
				next = i
			}
		}
		if next < 0 {
			return
		}
		t := s.tasks[next]
		s.Cancel(t.id)
		t.fn()
	}
}
