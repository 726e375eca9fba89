package bullseye

// Playfield geometry constants in playfield units.
const (
	ReferenceWidth  = 900.0
	ReferenceHeight = 500.0

	compactBreakpoint  = 768.0
	bowX               = 100.0
	compactBowX        = 80.0
	compactTargetInset = 100.0

	motionTop         = 100.0 // target turns around at or above this y
	motionBottomInset = 150.0 // and at or below Height minus this
	groundInset       = 50.0  // arrows below Height minus this have landed
)

// Layout is the playfield size supplied by the presentation layer. Every
// bound the simulation tests against is derived from it.
type Layout struct {
	Width, Height float64
}

// ReferenceLayout is the desktop playfield the level distances are tuned for.
var ReferenceLayout = Layout{Width: ReferenceWidth, Height: ReferenceHeight}

// Compact reports whether the narrow phone layout applies.
func (l Layout) Compact() bool {
	return l.Width < compactBreakpoint
}

// Bow returns the bow anchor where arrows are spawned.
func (l Layout) Bow() Vec2 {
	x := bowX
	if l.Compact() {
		x = compactBowX
	}
	return Vec2{X: x, Y: l.Height / 2}
}

// TargetX returns the target's horizontal position for a level.
func (l Layout) TargetX(cfg LevelConfig) float64 {
	if l.Compact() {
		return l.Width - compactTargetInset
	}
	return cfg.Distance
}

// MotionBounds returns the y values at which a moving target turns around.
func (l Layout) MotionBounds() (top, bottom float64) {
	return motionTop, l.Height - motionBottomInset
}

// GroundY returns the y below which an arrow counts as a miss.
func (l Layout) GroundY() float64 {
	return l.Height - groundInset
}

// Escaped reports whether (x, y) has left the playfield through the sides or
// the bottom. The top edge is open: a lofted arrow may fall back into play.
func (l Layout) Escaped(x, y float64) bool {
	if y < 0 {
		y = 0
	}
	return !l.Bounds().Contains(x, y)
}

// Bounds returns the playfield as a Rect.
func (l Layout) Bounds() Rect {
	return Rect{Width: l.Width, Height: l.Height}
}

func (l Layout) valid() bool {
	return l.Width > 0 && l.Height > 0
}
