package bullseye

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the base for the playfield's white tints.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts the color to an 8-bit straight-alpha color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions and velocities in playfield units.
// The origin is the top-left corner with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the particle bursts to sample velocity, size and hue.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Phase is the discrete stage of one playthrough.
type Phase uint8

const (
	PhaseMenu          Phase = iota // waiting for a player name
	PhaseAiming                     // bow ready, target may move
	PhaseFlight                     // an arrow is live or resolving
	PhaseLevelComplete              // last arrow hit; waiting for advance
	PhaseGameOver                   // last arrow missed; waiting for retry
	PhaseChampion                   // level 5 cleared; waiting for play again
)

var phaseNames = [...]string{
	PhaseMenu:          "menu",
	PhaseAiming:        "aiming",
	PhaseFlight:        "flight",
	PhaseLevelComplete: "levelComplete",
	PhaseGameOver:      "gameOver",
	PhaseChampion:      "champion",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Outcome is the result of one collision pass against the live arrow.
type Outcome uint8

const (
	OutcomeNone        Outcome = iota // arrow still flying
	OutcomeHit                        // arrow inside the target circle
	OutcomeMiss                       // arrow dropped below the ground line
	OutcomeOutOfBounds                // arrow left the playfield sideways or below
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeOutOfBounds:
		return "outOfBounds"
	default:
		return "none"
	}
}

// EventType identifies a kind of simulation event.
type EventType uint8

const (
	EventHit          EventType = iota // arrow struck the target
	EventMiss                          // arrow hit the ground
	EventOutOfBounds                   // arrow escaped the playfield
	EventPhaseChanged                  // progress moved to a new phase
)

func (e EventType) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventOutOfBounds:
		return "outOfBounds"
	case EventPhaseChanged:
		return "phaseChanged"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
