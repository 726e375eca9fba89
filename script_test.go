package bullseye

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, json, want string
	}{
		{"bad json", `{`, "parse script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"jump"}]}`, "unknown action"},
		{"unknown phase", `{"steps":[{"action":"waitPhase","phase":"won"}]}`, "unknown phase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func runScript(t *testing.T, s *Simulation, r *Script, max int) {
	t.Helper()
	for i := 0; i < max; i++ {
		if r.Done() {
			return
		}
		r.Step(s)
		s.Update()
	}
	if !r.Done() {
		t.Fatalf("script not done after %d frames", max)
	}
}

func TestScriptPlaysAHit(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"start","name":"Robin"},
		{"action":"shoot","angle":-0.7853981633974483,"strength":80},
		{"action":"waitPhase","phase":"aiming","frames":300},
		{"action":"screenshot","label":"after-hit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var shots []string
	r.OnScreenshot = func(label string) { shots = append(shots, label) }

	s := newTestSimulation(t)
	runScript(t, s, r, 400)

	if s.Phase() != PhaseAiming {
		t.Errorf("Phase = %v, want aiming", s.Phase())
	}
	if s.Progress().Score != 100 {
		t.Errorf("Score = %d, want 100", s.Progress().Score)
	}
	if len(shots) != 1 || shots[0] != "after-hit" {
		t.Errorf("screenshots = %v", shots)
	}
}

func TestScriptDrag(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"start","name":"Robin"},
		{"action":"drag","fromX":100,"fromY":250,"toX":-100,"toY":250,"frames":5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSimulation(t)
	runScript(t, s, r, 50)
	a := s.Arrow()
	if a == nil {
		t.Fatalf("drag did not fire: phase %v", s.Phase())
	}
	if !approxEqual(a.VX, -15, 1e-6) {
		t.Errorf("VX = %v, want -15 for a full pull to the left", a.VX)
	}
	// straight back out of the left edge
	runUntil(t, s, 50, func() bool { return s.Arrow() == nil })
	if s.Progress().Arrows != 5 || s.Phase() != PhaseAiming {
		t.Errorf("after escape: %+v", s.Progress())
	}
}

func TestScriptLifecycleActions(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"start","name":"Robin"},
		{"action":"mute"},
		{"action":"layout","width":400,"height":400},
		{"action":"wait","frames":3},
		{"action":"reset"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSimulation(t)
	runScript(t, s, r, 20)
	if !s.Muted() {
		t.Error("mute step not applied")
	}
	if s.Layout() != (Layout{Width: 400, Height: 400}) {
		t.Errorf("Layout = %v", s.Layout())
	}
	if s.Phase() != PhaseMenu {
		t.Errorf("Phase = %v, want menu after reset", s.Phase())
	}
}

func TestScriptWaitPhaseTimeout(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"waitPhase","phase":"champion","frames":5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSimulation(t)
	runScript(t, s, r, 20)
	if s.Phase() != PhaseMenu {
		t.Errorf("Phase = %v", s.Phase())
	}
}
