package bullseye

import "testing"

func TestLayoutReference(t *testing.T) {
	l := ReferenceLayout
	if l.Compact() {
		t.Error("reference layout should not be compact")
	}
	if got := l.Bow(); got != (Vec2{X: 100, Y: 250}) {
		t.Errorf("Bow() = %v, want {100 250}", got)
	}
	cfg, _ := Level(3)
	if got := l.TargetX(cfg); got != 700 {
		t.Errorf("TargetX = %v, want 700", got)
	}
	top, bottom := l.MotionBounds()
	if top != 100 || bottom != 350 {
		t.Errorf("MotionBounds = (%v, %v), want (100, 350)", top, bottom)
	}
	if got := l.GroundY(); got != 450 {
		t.Errorf("GroundY = %v, want 450", got)
	}
}

func TestLayoutCompact(t *testing.T) {
	l := Layout{Width: 400, Height: 400}
	if !l.Compact() {
		t.Fatal("400 wide layout should be compact")
	}
	if got := l.Bow(); got != (Vec2{X: 80, Y: 200}) {
		t.Errorf("Bow() = %v, want {80 200}", got)
	}
	cfg, _ := Level(5)
	if got := l.TargetX(cfg); got != 300 {
		t.Errorf("TargetX = %v, want 300", got)
	}
}

func TestLayoutBreakpoint(t *testing.T) {
	if (Layout{Width: 768, Height: 500}).Compact() {
		t.Error("768 is the first wide width")
	}
	if !(Layout{Width: 767.9, Height: 500}).Compact() {
		t.Error("767.9 should be compact")
	}
}

func TestLayoutEscaped(t *testing.T) {
	l := ReferenceLayout
	tests := []struct {
		x, y float64
		want bool
	}{
		{450, 250, false},
		{450, -500, false}, // top edge is open
		{901, 250, true},
		{-1, 250, true},
		{450, 501, true},
		{900, 500, false},
		{-1, -300, true},  // above the top but past a side
		{950, -300, true}, // same on the right
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := l.Escaped(tt.x, tt.y); got != tt.want {
			t.Errorf("Escaped(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLayoutValid(t *testing.T) {
	if !ReferenceLayout.valid() {
		t.Error("reference layout should be valid")
	}
	if (Layout{Width: 0, Height: 10}).valid() {
		t.Error("zero width should be invalid")
	}
	if got := ReferenceLayout.Bounds(); got != (Rect{Width: 900, Height: 500}) {
		t.Errorf("Bounds = %v", got)
	}
}
