package bullseye

import "testing"

func TestListenerRegistryEmit(t *testing.T) {
	var r listenerRegistry
	var got []EventType
	r.add(ListenerFunc(func(e Event) { got = append(got, e.Type) }))
	r.emit(Event{Type: EventHit})
	r.emit(Event{Type: EventMiss})
	if len(got) != 2 || got[0] != EventHit || got[1] != EventMiss {
		t.Errorf("got %v", got)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	var r listenerRegistry
	a, b := 0, 0
	ha := r.add(ListenerFunc(func(Event) { a++ }))
	r.add(ListenerFunc(func(Event) { b++ }))
	r.emit(Event{})
	ha.Remove()
	ha.Remove() // second remove is a no-op
	r.emit(Event{})
	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1, 2", a, b)
	}
	CallbackHandle{}.Remove()
}

func TestListenerRemovesItselfDuringEmit(t *testing.T) {
	var r listenerRegistry
	calls := 0
	var h CallbackHandle
	h = r.add(ListenerFunc(func(Event) {
		calls++
		h.Remove()
	}))
	other := 0
	r.add(ListenerFunc(func(Event) { other++ }))
	r.emit(Event{})
	r.emit(Event{})
	if calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other listener called %d times, want 2", other)
	}
}

func TestReentrantEmit(t *testing.T) {
	var r listenerRegistry
	var seen []EventType
	r.add(ListenerFunc(func(e Event) {
		seen = append(seen, e.Type)
		if e.Type == EventHit {
			r.emit(Event{Type: EventPhaseChanged})
		}
	}))
	r.emit(Event{Type: EventHit})
	if len(seen) != 2 || seen[1] != EventPhaseChanged {
		t.Errorf("seen = %v", seen)
	}
}
