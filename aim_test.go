package bullseye

import (
	"math"
	"testing"
)

func TestPullStrength(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{0, 0, 0},
		{60, 80, 50},
		{-200, 0, 100},
		{300, 400, 100}, // clamped
	}
	for _, tt := range tests {
		if got := PullStrength(tt.dx, tt.dy); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("PullStrength(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestAimPointWithoutPull(t *testing.T) {
	var a Aim
	bow := Vec2{X: 100, Y: 250}
	a.point(bow, 100, 350)
	if !approxEqual(a.Angle, math.Pi/2, epsilon) {
		t.Errorf("Angle = %v, want pi/2", a.Angle)
	}
	if a.Strength != 0 {
		t.Errorf("Strength = %v, want 0 while not pulling", a.Strength)
	}
}

func TestAimPullAndRelease(t *testing.T) {
	var a Aim
	bow := Vec2{X: 100, Y: 250}
	a.begin()
	a.point(bow, 100-160, 250)
	if !approxEqual(a.Strength, 80, epsilon) {
		t.Fatalf("Strength = %v, want 80", a.Strength)
	}
	if !approxEqual(a.Angle, math.Pi, epsilon) {
		t.Errorf("Angle = %v, want pi", a.Angle)
	}
	s, ok := a.release()
	if !ok || !approxEqual(s, 80, epsilon) {
		t.Errorf("release() = %v, %v; want 80, true", s, ok)
	}
	if a.Pulling || a.Strength != 0 {
		t.Errorf("after release = %+v", a)
	}
}

func TestAimWeakReleaseCancels(t *testing.T) {
	var a Aim
	a.begin()
	a.point(Vec2{}, 10, 0) // strength 5
	s, ok := a.release()
	if ok || s != 0 {
		t.Errorf("release() = %v, %v; want 0, false", s, ok)
	}
	if a.Pulling || a.Strength != 0 {
		t.Errorf("pull not reset: %+v", a)
	}
}

func TestAimReleaseThreshold(t *testing.T) {
	var a Aim
	a.begin()
	a.point(Vec2{}, 20, 0) // exactly MinReleaseStrength
	if _, ok := a.release(); !ok {
		t.Error("release at the threshold should fire")
	}
	if _, ok := a.release(); ok {
		t.Error("release without a pull should not fire")
	}
}
