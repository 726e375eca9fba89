package bullseye

import "slices"

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Event is emitted synchronously from inside Simulation.Update or an action
// call. X and Y carry the arrow position for shot events.
type Event struct {
	Type   EventType
	ShotID string
	X, Y   float64
	Phase  Phase // phase after the event
}

// Listener receives simulation events. Implementations must not block; they
// run inside the frame.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

// HandleEvent calls f(e).
func (f ListenerFunc) HandleEvent(e Event) {
	f(e)
}

type listenerEntry struct {
	id uint32
	l  Listener
}

type listenerRegistry struct {
	entries []listenerEntry
	nextID  uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id  uint32
	reg *listenerRegistry
}

// Remove unregisters the listener so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.entries
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listenerEntry{}
			h.reg.entries = s[:len(s)-1]
			return
		}
	}
}

func (r *listenerRegistry) add(l Listener) CallbackHandle {
	r.nextID++
	r.entries = append(r.entries, listenerEntry{id: r.nextID, l: l})
	return CallbackHandle{id: r.nextID, reg: r}
}

// emit delivers e to a snapshot of the registered listeners so handlers may
// add or remove listeners while being called.
func (r *listenerRegistry) emit(e Event) {
	if len(r.entries) == 0 {
		return
	}
	for _, entry := range slices.Clone(r.entries) {
		entry.l.HandleEvent(e)
	}
}
