package bullseye

import "time"

// Scheduler runs delayed callbacks on simulation time. Time only moves when
// Advance is called, so delays are frame-driven and deterministic. Tasks are
// keyed (by shot id in practice) so a whole shot's pending work can be
// invalidated at once.
type Scheduler struct {
	now    time.Duration
	tasks  []task
	nextID uint64
}

type task struct {
	id  uint64
	key string
	due time.Duration
	fn  func()
}

// Now returns the simulation time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(key string, delay time.Duration, fn func()) {
	s.nextID++
	s.tasks = append(s.tasks, task{
		id:  s.nextID,
		key: key,
		due: s.now + delay,
		fn:  fn,
	})
}

// Cancel drops every pending task with the given key and returns how many
// were dropped.
func (s *Scheduler) Cancel(key string) int {
	n := 0
	for i := 0; i < len(s.tasks); {
		if s.tasks[i].key == key {
			s.remove(i)
			n++
			continue
		}
		i++
	}
	return n
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	clear(s.tasks)
	s.tasks = s.tasks[:0]
	return n
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance moves simulation time forward by dt and runs every task that came
// due, earliest first, ties in scheduling order. A task is removed before it
// runs, so callbacks may freely schedule or cancel other tasks. It returns
// the number of tasks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	s.now += dt
	ran := 0
	for {
		i := s.nextDue()
		if i < 0 {
			return ran
		}
		fn := s.tasks[i].fn
		s.remove(i)
		fn()
		ran++
	}
}

// nextDue returns the index of the earliest task due at or before now, or -1.
func (s *Scheduler) nextDue() int {
	best := -1
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.due > s.now {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due ||
			(t.due == s.tasks[best].due && t.id < s.tasks[best].id) {
			best = i
		}
	}
	return best
}

func (s *Scheduler) remove(i int) {
	copy(s.tasks[i:], s.tasks[i+1:])
	s.tasks[len(s.tasks)-1] = task{}
	s.tasks = s.tasks[:len(s.tasks)-1]
}
