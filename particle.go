package bullseye

import (
	"math"
	"math/rand/v2"
)

// ParticleGravity is the downward acceleration applied to every particle,
// in units/tick².
const ParticleGravity = 0.2

// ParticleKind distinguishes hit sparks from miss dust for color derivation.
type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota // warm burst on a hit
	ParticleDust                      // gray puff on a miss
)

// dustColor is the fixed tint of miss particles.
var dustColor = Color{R: 120.0 / 255.0, G: 120.0 / 255.0, B: 120.0 / 255.0, A: 1}

// Particle is one ephemeral visual particle. Life counts down in ticks.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
	Hue     float64 // degrees; only meaningful for sparks
	Kind    ParticleKind
}

// Alpha returns the particle's opacity: the fraction of its lifetime left.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clamp01(float64(p.Life) / float64(p.MaxLife))
}

// Color returns the particle's tint with Alpha applied.
func (p Particle) Color() Color {
	if p.Kind == ParticleDust {
		return dustColor.WithAlpha(p.Alpha())
	}
	return hsl(p.Hue, 1, 0.6).WithAlpha(p.Alpha())
}

// burstConfig controls how one burst is spawned.
type burstConfig struct {
	// Count is the number of particles spawned at once.
	Count int
	// Velocity is the range each velocity component is sampled from.
	Velocity Range
	// Lifetime is the particle lifetime in ticks.
	Lifetime int
	// Size is the range of particle radii.
	Size Range
	// Hue is the range of hues in degrees.
	Hue Range
	// Kind tags every particle in the burst.
	Kind ParticleKind
}

var (
	hitBurst = burstConfig{
		Count:    50,
		Velocity: Range{Min: -6, Max: 6},
		Lifetime: 40,
		Size:     Range{Min: 2, Max: 7},
		Hue:      Range{Min: 40, Max: 70},
		Kind:     ParticleSpark,
	}
	missBurst = burstConfig{
		Count:    20,
		Velocity: Range{Min: -4, Max: 4},
		Lifetime: 25,
		Size:     Range{Min: 1, Max: 5},
		Kind:     ParticleDust,
	}
)

// ParticleSystem owns the live particles. There is no ordering among them and
// no cap beyond natural decay.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system drawing from rng.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, hitBurst.Count),
		rng:       rng,
	}
}

// SpawnHitBurst emits a spark burst at (x, y).
func (s *ParticleSystem) SpawnHitBurst(x, y float64) {
	s.spawn(hitBurst, x, y)
}

// SpawnMissBurst emits a dust burst at (x, y).
func (s *ParticleSystem) SpawnMissBurst(x, y float64) {
	s.spawn(missBurst, x, y)
}

func (s *ParticleSystem) spawn(cfg burstConfig, x, y float64) {
	for range cfg.Count {
		s.particles = append(s.particles, Particle{
			X:       x,
			Y:       y,
			VX:      cfg.Velocity.Random(s.rng),
			VY:      cfg.Velocity.Random(s.rng),
			Life:    cfg.Lifetime,
			MaxLife: cfg.Lifetime,
			Size:    cfg.Size.Random(s.rng),
			Hue:     cfg.Hue.Random(s.rng),
			Kind:    cfg.Kind,
		})
	}
}

// Update advances every particle one tick and swap-removes the ones whose
// lifetime ran out.
func (s *ParticleSystem) Update() {
	i := 0
	for i < len(s.particles) {
		p := &s.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += ParticleGravity
		p.Life--
		if p.Life <= 0 {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles = s.particles[:last]
			continue
		}
		i++
	}
}

// Particles returns the live particles. The returned slice MUST NOT be
// mutated and is only valid until the next Update or spawn.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Reset kills all particles.
func (s *ParticleSystem) Reset() {
	s.particles = s.particles[:0]
}

// hsl converts hue (degrees), saturation and lightness in [0, 1] to an opaque Color.
func hsl(h, sat, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * sat
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}
