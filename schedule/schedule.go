// Package schedule runs one-shot deferred actions on the game tick.
package schedule

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Purpose keys a pending action. At most one action per purpose is pending.
type Purpose int

const (
	HintFade Purpose = iota
	SpeedReset
	RestartFade
)

func (p Purpose) String() string {
	switch p {
	case HintFade:
		return "hint_fade"
	case SpeedReset:
		return "speed_reset"
	case RestartFade:
		return "restart_fade"
	}
	return "unknown"
}

// purposes is the order due actions fire in within one update.
var purposes = []Purpose{HintFade, SpeedReset, RestartFade}

type task struct {
	tween *gween.Tween
	value float32
	fire  func()
}

// Scheduler is driven by Update from the game loop; nothing runs on another
// goroutine.
type Scheduler struct {
	tasks map[Purpose]*task
}

func New() *Scheduler {
	return &Scheduler{tasks: make(map[Purpose]*task)}
}

// Arm schedules fire for when tw finishes. A pending action with the same
// purpose is dropped without running. It reports whether one was replaced.
func (s *Scheduler) Arm(p Purpose, tw *gween.Tween, fire func()) bool {
	_, replaced := s.tasks[p]
	v, _ := tw.Update(0)
	s.tasks[p] = &task{tween: tw, value: v, fire: fire}
	return replaced
}

// After arms fire to run in seconds, with Value going linearly from 1 to 0.
func (s *Scheduler) After(p Purpose, seconds float32, fire func()) bool {
	return s.Arm(p, gween.New(1, 0, seconds, ease.Linear), fire)
}

// Cancel drops the pending action for p, if any.
func (s *Scheduler) Cancel(p Purpose) bool {
	_, ok := s.tasks[p]
	delete(s.tasks, p)
	return ok
}

func (s *Scheduler) Pending(p Purpose) bool {
	_, ok := s.tasks[p]
	return ok
}

// Value is the current tween value of a pending action.
func (s *Scheduler) Value(p Purpose) (float32, bool) {
	t, ok := s.tasks[p]
	if !ok {
		return 0, false
	}
	return t.value, true
}

// Update advances every pending tween by dt seconds and runs the actions
// that finished. An action may arm a new one for its own purpose.
func (s *Scheduler) Update(dt float32) {
	for _, p := range purposes {
		t, ok := s.tasks[p]
		if !ok {
			continue
		}
		v, done := t.tween.Update(dt)
		t.value = v
		if !done {
			continue
		}
		delete(s.tasks, p)
		if t.fire != nil {
			t.fire()
		}
	}
}

// Clear drops everything without running it.
func (s *Scheduler) Clear() {
	clear(s.tasks)
}
