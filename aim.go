package bullseye

import "math"

const (
	// PullScale converts pointer distance from the bow into pull strength.
	PullScale = 0.5

	// MaxStrength caps pull strength.
	MaxStrength = 100.0

	// MinReleaseStrength is the weakest pull that still looses an arrow.
	// Anything below cancels the pull silently.
	MinReleaseStrength = 10.0
)

// Aim is the bow's pointer-driven state: where it points and how far the
// string is drawn. Angle follows the pointer whether or not a pull is in
// progress; Strength only changes while Pulling.
type Aim struct {
	Angle    float64 // radians, from the bow toward the pointer
	Strength float64 // 0..MaxStrength
	Pulling  bool
}

// PullStrength maps a pointer offset from the bow to a strength in
// [0, MaxStrength].
func PullStrength(dx, dy float64) float64 {
	return math.Min(math.Hypot(dx, dy)*PullScale, MaxStrength)
}

// point updates the aim for a pointer at (x, y).
func (a *Aim) point(bow Vec2, x, y float64) {
	dx := x - bow.X
	dy := y - bow.Y
	a.Angle = math.Atan2(dy, dx)
	if a.Pulling {
		a.Strength = PullStrength(dx, dy)
	}
}

// begin starts drawing the string.
func (a *Aim) begin() {
	a.Pulling = true
}

// cancel lets the string go without firing.
func (a *Aim) cancel() {
	a.Pulling = false
	a.Strength = 0
}

// release ends the pull and returns the strength to fire with. ok is false
// when there was no pull or it was too weak; the pull is reset either way.
func (a *Aim) release() (strength float64, ok bool) {
	strength = a.Strength
	ok = a.Pulling && strength >= MinReleaseStrength
	a.cancel()
	if !ok {
		return 0, false
	}
	return strength, true
}
