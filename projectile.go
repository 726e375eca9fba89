package bullseye

import "math"

const (
	// Gravity is the downward acceleration applied to an arrow, in units/tick².
	Gravity = 0.3

	// LaunchScale converts pull strength (0-100) into launch speed.
	LaunchScale = 0.15
)

// Projectile is the single live arrow. Hit and Missed are mutually exclusive
// once set; a resolved projectile no longer moves.
type Projectile struct {
	ShotID string
	X, Y   float64
	VX, VY float64
	Angle  float64 // heading in radians, atan2(VY, VX)
	Hit    bool
	Missed bool
}

// NewProjectile launches an arrow from origin along angle at the speed
// implied by strength.
func NewProjectile(shotID string, origin Vec2, angle, strength float64) *Projectile {
	speed := strength * LaunchScale
	return &Projectile{
		ShotID: shotID,
		X:      origin.X,
		Y:      origin.Y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Angle:  angle,
	}
}

// Resolved reports whether a hit or miss has been recorded.
func (p *Projectile) Resolved() bool {
	return p.Hit || p.Missed
}

// Step advances the arrow one tick: position by velocity, then gravity into
// VY, then the heading from the new velocity.
func (p *Projectile) Step() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Angle = math.Atan2(p.VY, p.VX)
}
