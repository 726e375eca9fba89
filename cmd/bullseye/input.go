package main

import "github.com/hajimehoshi/ebiten/v2"

type pointerAction uint8

const (
	pointerIdle pointerAction = iota
	pointerHover
	pointerPressed
	pointerDragged
	pointerReleased
)

// pointerTracker merges the mouse and the first active touch into a single
// pointer. A touch that starts while the mouse is up owns the pointer until
// it lifts.
type pointerTracker struct {
	down     bool
	lastX    float64
	lastY    float64
	havePos  bool
	moved    bool
	touching bool
	touchID  ebiten.TouchID
	touchIDs []ebiten.TouchID
}

// transition reports what the pointer did this frame given its new pressed
// state, and records that state.
func (p *pointerTracker) transition(down bool) pointerAction {
	was := p.down
	p.down = down
	switch {
	case down && !was:
		return pointerPressed
	case down && was:
		return pointerDragged
	case !down && was:
		return pointerReleased
	case p.moved:
		return pointerHover
	}
	return pointerIdle
}

// observe records a pointer position and whether it differs from the last one.
func (p *pointerTracker) observe(x, y float64) {
	p.moved = !p.havePos || x != p.lastX || y != p.lastY
	p.lastX, p.lastY, p.havePos = x, y, true
}

// pollPointer samples the mouse and touches and returns the pointer position
// and pressed state.
func pollPointer(p *pointerTracker) (x, y float64, down bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	if p.touching {
		for _, id := range p.touchIDs {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				p.observe(float64(tx), float64(ty))
				return p.lastX, p.lastY, true
			}
		}
		// lifted: release where it was last seen
		p.touching = false
		p.moved = false
		return p.lastX, p.lastY, false
	}

	if !p.down && len(p.touchIDs) > 0 {
		p.touching = true
		p.touchID = p.touchIDs[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		p.observe(float64(tx), float64(ty))
		return p.lastX, p.lastY, true
	}

	mx, my := ebiten.CursorPosition()
	p.observe(float64(mx), float64(my))
	return p.lastX, p.lastY, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
