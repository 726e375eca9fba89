package bullseye

import (
	"encoding/json"
	"fmt"
	"math"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action   string  `json:"action"`
	Name     string  `json:"name,omitempty"`
	Label    string  `json:"label,omitempty"`
	Phase    string  `json:"phase,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Angle    float64 `json:"angle,omitempty"`
	Strength float64 `json:"strength,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

type pointerKind uint8

const (
	pointerPress pointerKind = iota
	pointerMove
	pointerRelease
)

// syntheticPointerEvent is one queued pointer event in playfield coordinates.
type syntheticPointerEvent struct {
	x, y float64
	kind pointerKind
}

// Script sequences lifecycle actions and injected pointer events across
// frames. Call Step once per frame before Simulation.Update. Pointer events
// are consumed one per frame, like real input.
//
// Supported actions:
//
//	start {name}            StartGame
//	press/move/release {x,y} one pointer event
//	drag {fromX,fromY,toX,toY,frames} press, interpolated moves, release
//	shoot {angle,strength}  press and release at the point giving that pull
//	wait {frames}           idle
//	waitPhase {phase,frames} idle until the phase is reached; frames caps it
//	advance, retry, playAgain, reset, mute
//	layout {width,height}   SetLayout
//	screenshot {label}      calls OnScreenshot
type Script struct {
	// OnScreenshot is invoked for screenshot steps. Nil skips them.
	OnScreenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	waitPhase *Phase
	queue     []syntheticPointerEvent
	done      bool
}

var scriptActions = map[string]bool{
	"start": true, "press": true, "move": true, "release": true,
	"drag": true, "shoot": true, "wait": true, "waitPhase": true,
	"advance": true, "retry": true, "playAgain": true, "reset": true,
	"mute": true, "layout": true, "screenshot": true,
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "waitPhase" {
			if _, ok := ParsePhase(st.Phase); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown phase %q", i, st.Phase)
			}
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has run and every queued event drained.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one frame against s.
func (r *Script) Step(s *Simulation) {
	if r.done {
		return
	}
	if len(r.queue) > 0 {
		r.dispatch(s)
		r.checkDone()
		return
	}
	if r.waitPhase != nil {
		if s.Phase() != *r.waitPhase && r.waitCount != 0 {
			if r.waitCount > 0 {
				r.waitCount--
			}
			return
		}
		r.waitPhase = nil
		r.waitCount = 0
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "start":
		s.StartGame(st.Name)
	case "press":
		r.inject(st.X, st.Y, pointerPress)
	case "move":
		r.inject(st.X, st.Y, pointerMove)
	case "release":
		r.inject(st.X, st.Y, pointerRelease)
	case "drag":
		r.injectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "shoot":
		bow := s.Bow()
		d := st.Strength / PullScale
		x := bow.X + math.Cos(st.Angle)*d
		y := bow.Y + math.Sin(st.Angle)*d
		r.inject(x, y, pointerPress)
		r.inject(x, y, pointerRelease)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "waitPhase":
		p, _ := ParsePhase(st.Phase)
		r.waitPhase = &p
		r.waitCount = -1
		if st.Frames > 0 {
			r.waitCount = st.Frames
		}
	case "advance":
		s.AdvanceLevel()
	case "retry":
		s.RetryLevel()
	case "playAgain":
		s.PlayAgain()
	case "reset":
		s.ResetToMenu()
	case "mute":
		s.ToggleMute()
	case "layout":
		s.SetLayout(st.Width, st.Height)
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	}

	// Pointer steps start dispatching on the frame they are read.
	if len(r.queue) > 0 {
		r.dispatch(s)
	}
	r.checkDone()
}

func (r *Script) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.waitPhase == nil && len(r.queue) == 0 {
		r.done = true
	}
}

func (r *Script) inject(x, y float64, kind pointerKind) {
	r.queue = append(r.queue, syntheticPointerEvent{x: x, y: y, kind: kind})
}

// injectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY).
func (r *Script) injectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.inject(fromX, fromY, pointerPress)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.inject(lerp(fromX, toX, t), lerp(fromY, toY, t), pointerMove)
	}
	r.inject(toX, toY, pointerMove)
	r.inject(toX, toY, pointerRelease)
}

// dispatch pops one queued event and feeds it to the simulation.
func (r *Script) dispatch(s *Simulation) {
	evt := r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue = r.queue[:len(r.queue)-1]

	switch evt.kind {
	case pointerPress:
		s.PointerDown(evt.x, evt.y)
	case pointerMove:
		s.PointerMove(evt.x, evt.y)
	case pointerRelease:
		s.PointerMove(evt.x, evt.y)
		s.PointerUp()
	}
}

// ParsePhase maps a phase name as printed by Phase.String back to a Phase.
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return 0, false
}
