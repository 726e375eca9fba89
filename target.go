package bullseye

// Target is the circle the player shoots at.
type Target struct {
	X, Y      float64
	Radius    float64
	Moving    bool
	Speed     float64
	Direction float64 // +1 moving down, -1 moving up
}

// NewTarget places the level's target at its entry position for layout.
func NewTarget(cfg LevelConfig, layout Layout) Target {
	return Target{
		X:         layout.TargetX(cfg),
		Y:         layout.Height / 2,
		Radius:    cfg.TargetRadius,
		Moving:    cfg.Moving,
		Speed:     cfg.Speed,
		Direction: 1,
	}
}

// Move advances a moving target one tick and reverses its direction once it
// reaches either motion bound. Static targets are left untouched.
func (t *Target) Move(layout Layout) {
	if !t.Moving {
		return
	}
	t.Y += t.Speed * t.Direction
	top, bottom := layout.MotionBounds()
	if t.Y <= top || t.Y >= bottom {
		t.Direction = -t.Direction
	}
}

// Contains reports whether (x, y) lies inside or on the target circle.
func (t Target) Contains(x, y float64) bool {
	dx := x - t.X
	dy := y - t.Y
	return dx*dx+dy*dy <= t.Radius*t.Radius
}

// fit repositions the target for a new layout, keeping its vertical offset
// inside the motion bounds.
func (t *Target) fit(cfg LevelConfig, layout Layout) {
	t.X = layout.TargetX(cfg)
	top, bottom := layout.MotionBounds()
	if t.Y < top {
		t.Y = top
	}
	if bottom > top && t.Y > bottom {
		t.Y = bottom
	}
}
