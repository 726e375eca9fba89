package bullseye

// Resolve tests the arrow against the target, the ground line and the
// playfield edges, in that order, and reports the first that applies.
// A projectile that already carries a hit or miss is never tested again.
func Resolve(p *Projectile, t Target, layout Layout) Outcome {
	if p == nil || p.Resolved() {
		return OutcomeNone
	}
	if t.Contains(p.X, p.Y) {
		return OutcomeHit
	}
	if p.Y > layout.GroundY() {
		return OutcomeMiss
	}
	if layout.Escaped(p.X, p.Y) {
		return OutcomeOutOfBounds
	}
	return OutcomeNone
}
