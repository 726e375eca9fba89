package bullseye

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewProjectileVelocity(t *testing.T) {
	p := NewProjectile("s", Vec2{X: 100, Y: 250}, 0, 100)
	if !approxEqual(p.VX, 15, epsilon) || !approxEqual(p.VY, 0, epsilon) {
		t.Errorf("velocity = (%v, %v), want (15, 0)", p.VX, p.VY)
	}
	if p.X != 100 || p.Y != 250 {
		t.Errorf("position = (%v, %v), want (100, 250)", p.X, p.Y)
	}
	if p.ShotID != "s" {
		t.Errorf("ShotID = %q, want s", p.ShotID)
	}
	if p.Resolved() {
		t.Error("new projectile should be unresolved")
	}
}

func TestNewProjectileAngled(t *testing.T) {
	p := NewProjectile("s", Vec2{}, -math.Pi/2, 40)
	if !approxEqual(p.VX, 0, 1e-12) || !approxEqual(p.VY, -6, epsilon) {
		t.Errorf("velocity = (%v, %v), want (0, -6)", p.VX, p.VY)
	}
}

func TestProjectileStepOrder(t *testing.T) {
	p := &Projectile{X: 0, Y: 0, VX: 2, VY: -3}
	p.Step()
	// position uses the pre-gravity velocity
	if p.X != 2 || p.Y != -3 {
		t.Errorf("position = (%v, %v), want (2, -3)", p.X, p.Y)
	}
	if !approxEqual(p.VY, -2.7, epsilon) {
		t.Errorf("VY = %v, want -2.7", p.VY)
	}
	if !approxEqual(p.Angle, math.Atan2(-2.7, 2), epsilon) {
		t.Errorf("Angle = %v, want atan2(-2.7, 2)", p.Angle)
	}
}

func TestProjectileClosedFormTrajectory(t *testing.T) {
	vx0, vy0 := 5.0, -8.0
	p := &Projectile{X: 10, Y: 20, VX: vx0, VY: vy0}
	const n = 40
	for range n {
		p.Step()
	}
	wantX := 10 + n*vx0
	wantY := 20 + n*vy0 + Gravity/2*n*(n-1)
	wantVY := vy0 + Gravity*n
	if !approxEqual(p.X, wantX, 1e-6) {
		t.Errorf("X = %v, want %v", p.X, wantX)
	}
	if !approxEqual(p.Y, wantY, 1e-6) {
		t.Errorf("Y = %v, want %v", p.Y, wantY)
	}
	if !approxEqual(p.VY, wantVY, 1e-6) {
		t.Errorf("VY = %v, want %v", p.VY, wantVY)
	}
	if p.VX != vx0 {
		t.Errorf("VX = %v, want constant %v", p.VX, vx0)
	}
}

func TestProjectileResolved(t *testing.T) {
	p := &Projectile{Hit: true}
	if !p.Resolved() {
		t.Error("hit projectile should be resolved")
	}
	p = &Projectile{Missed: true}
	if !p.Resolved() {
		t.Error("missed projectile should be resolved")
	}
}
