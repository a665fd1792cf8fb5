package schedule

import (
	"testing"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	fired := 0
	s.After(SpeedReset, 1, func() { fired++ })

	s.Update(0.5)
	if fired != 0 || !s.Pending(SpeedReset) {
		t.Fatal("fired early")
	}
	if v, ok := s.Value(SpeedReset); !ok || v < 0.49 || v > 0.51 {
		t.Fatalf("Value = %v %v, want about 0.5", v, ok)
	}

	s.Update(0.6)
	if fired != 1 || s.Pending(SpeedReset) {
		t.Fatalf("fired = %d, pending = %v", fired, s.Pending(SpeedReset))
	}
	s.Update(5)
	if fired != 1 {
		t.Fatal("one-shot action ran twice")
	}
}

func TestArmReplaces(t *testing.T) {
	s := New()
	var ran []string
	s.After(HintFade, 4, func() { ran = append(ran, "first") })
	s.Update(3)

	if !s.After(HintFade, 4, func() { ran = append(ran, "second") }) {
		t.Fatal("re-arming should report a replacement")
	}
	s.Update(3)
	if len(ran) != 0 {
		t.Fatalf("replaced action ran: %v", ran)
	}
	s.Update(1.5)
	if len(ran) != 1 || ran[0] != "second" {
		t.Fatalf("ran = %v, want [second]", ran)
	}
}

func TestCancel(t *testing.T) {
	s := New()
	fired := false
	s.After(RestartFade, 0.25, func() { fired = true })

	if !s.Cancel(RestartFade) || s.Cancel(RestartFade) {
		t.Fatal("Cancel should report only the first removal")
	}
	s.Update(1)
	if fired {
		t.Fatal("cancelled action ran")
	}
	if _, ok := s.Value(RestartFade); ok {
		t.Fatal("no value after cancel")
	}
}

func TestFireOrder(t *testing.T) {
	s := New()
	var order []Purpose
	for _, p := range []Purpose{RestartFade, HintFade, SpeedReset} {
		p := p
		s.After(p, 1, func() { order = append(order, p) })
	}
	s.Update(2)

	want := []Purpose{HintFade, SpeedReset, RestartFade}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRearmFromAction(t *testing.T) {
	s := New()
	runs := 0
	var again func()
	again = func() {
		runs++
		if runs < 3 {
			s.After(SpeedReset, 1, again)
		}
	}
	s.After(SpeedReset, 1, again)
	for i := 0; i < 5; i++ {
		s.Update(1.1)
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want 3", runs)
	}
}

func TestArmCustomTween(t *testing.T) {
	s := New()
	s.Arm(HintFade, gween.New(0, 10, 2, ease.Linear), nil)
	if v, _ := s.Value(HintFade); v != 0 {
		t.Fatalf("initial value = %v", v)
	}
	s.Update(1)
	if v, _ := s.Value(HintFade); v < 4.9 || v > 5.1 {
		t.Fatalf("value = %v, want about 5", v)
	}
	s.Update(1)
	if s.Pending(HintFade) {
		t.Fatal("finished tween should not stay pending")
	}
	s.After(HintFade, 1, nil)
	s.Clear()
	if s.Pending(HintFade) {
		t.Fatal("Clear should drop pending actions")
	}
}
