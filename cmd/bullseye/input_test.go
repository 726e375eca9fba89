package main

import "testing"

func TestPointerTransition(t *testing.T) {
	var p pointerTracker
	steps := []struct {
		down  bool
		moved bool
		want  pointerAction
	}{
		{false, false, pointerIdle},
		{false, true, pointerHover},
		{true, false, pointerPressed},
		{true, true, pointerDragged},
		{true, false, pointerDragged},
		{false, false, pointerReleased},
		{false, false, pointerIdle},
	}
	for i, s := range steps {
		p.moved = s.moved
		if got := p.transition(s.down); got != s.want {
			t.Errorf("step %d: transition(%v) = %v, want %v", i, s.down, got, s.want)
		}
	}
}

func TestPointerObserve(t *testing.T) {
	var p pointerTracker
	p.observe(10, 20)
	if !p.moved {
		t.Error("first observation should count as movement")
	}
	p.observe(10, 20)
	if p.moved {
		t.Error("same position reported as movement")
	}
	p.observe(11, 20)
	if !p.moved || p.lastX != 11 {
		t.Errorf("moved=%v lastX=%v", p.moved, p.lastX)
	}
}
