package bullseye

import (
	"strings"
	"testing"
)

func TestFrameStatusLine(t *testing.T) {
	f := Frame{Phase: PhaseAiming, Player: "Robin", Level: 2, LevelName: "Novice", Score: 300, Arrows: 3, Muted: true}
	got := f.StatusLine()
	for _, want := range []string{"Robin", "Level 2: Novice", "Score 300", "|||", "[muted]"} {
		if !strings.Contains(got, want) {
			t.Errorf("StatusLine = %q, missing %q", got, want)
		}
	}
	if (Frame{Phase: PhaseMenu}).StatusLine() != "" {
		t.Error("menu should have no status line")
	}
}

func TestFramePrompt(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseMenu, "Enter your name: Rob_"},
		{PhaseLevelComplete, "N: next level"},
		{PhaseGameOver, "R: retry level"},
		{PhaseChampion, "P: play again"},
	}
	for _, tt := range tests {
		lines := Frame{Phase: tt.phase}.Prompt("Rob")
		if !strings.Contains(strings.Join(lines, "\n"), tt.want) {
			t.Errorf("%v prompt = %q, missing %q", tt.phase, lines, tt.want)
		}
	}
	if (Frame{Phase: PhaseAiming}).Prompt("") != nil {
		t.Error("aiming should have no prompt")
	}
	if (Frame{Phase: PhaseFlight}).Prompt("") != nil {
		t.Error("flight should have no prompt")
	}
}
