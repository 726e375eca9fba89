package bullseye

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	// HitResolveDelay is how long a hit stays on screen before the next phase.
	HitResolveDelay = 1000 * time.Millisecond

	// MissResolveDelay is how long a miss stays on screen before the next phase.
	MissResolveDelay = 500 * time.Millisecond
)

// Simulation is the game core: one explicit context owning the progress
// record, bow, target, arrow, particles and pending resolution tasks. The
// presentation layer calls Update once per frame, feeds input and lifecycle
// actions between frames, and reads Frame to draw.
//
// A Simulation is not safe for concurrent use; every call must come from the
// goroutine running the frame loop.
type Simulation struct {
	cfg    Config
	log    *slog.Logger
	layout Layout
	dt     time.Duration

	progress  Progress
	sessionID string
	bow       Vec2
	aim       Aim
	target    Target
	arrow     *Projectile
	particles *ParticleSystem
	banner    Banner
	sched     Scheduler
	listeners listenerRegistry

	tick  uint64
	muted bool
	stats debugStats
	newID func() string
}

// NewSimulation creates a simulation sitting in the menu phase.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Simulation{
		cfg:       cfg,
		log:       cfg.logger(),
		layout:    cfg.Layout(),
		dt:        cfg.TickDuration(),
		progress:  NewProgress(),
		particles: NewParticleSystem(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		newID:     uuid.NewString,
	}
	s.enterLevel()
	return s, nil
}

// Update advances the simulation by one tick: due resolution tasks, target
// motion, arrow physics, collision, particles, banner fade.
func (s *Simulation) Update() {
	var t0 time.Time
	if s.cfg.Debug {
		t0 = time.Now()
	}

	s.tick++
	s.sched.Advance(s.dt)

	if s.progress.Phase == PhaseAiming {
		s.target.Move(s.layout)
	}
	if s.arrow != nil && !s.arrow.Resolved() {
		s.arrow.Step()
		s.resolve()
	}
	s.particles.Update()
	s.banner.Update(s.dt)

	if s.cfg.Debug {
		s.stats.record(time.Since(t0), s.particles.Len())
		s.debugLog()
	}
}

// resolve applies the collision outcome for the live arrow.
func (s *Simulation) resolve() {
	a := s.arrow
	switch Resolve(a, s.target, s.layout) {
	case OutcomeHit:
		a.Hit = true
		s.particles.SpawnHitBurst(a.X, a.Y)
		s.progress.RecordHit()
		s.banner.Show(BullseyeText, HitResolveDelay)
		s.log.Debug("arrow hit", slog.String("shot", a.ShotID), slog.Int("score", s.progress.Score))
		s.emit(Event{Type: EventHit, ShotID: a.ShotID, X: a.X, Y: a.Y})
		s.scheduleFinish(a.ShotID, HitResolveDelay, OutcomeHit)

	case OutcomeMiss:
		a.Missed = true
		s.particles.SpawnMissBurst(a.X, a.Y)
		s.progress.RecordMiss()
		s.log.Debug("arrow missed", slog.String("shot", a.ShotID), slog.Int("arrows", s.progress.Arrows))
		s.emit(Event{Type: EventMiss, ShotID: a.ShotID, X: a.X, Y: a.Y})
		s.scheduleFinish(a.ShotID, MissResolveDelay, OutcomeMiss)

	case OutcomeOutOfBounds:
		prev := s.progress.Phase
		s.arrow = nil
		s.progress.Escape()
		s.log.Debug("arrow escaped", slog.String("shot", a.ShotID))
		s.emit(Event{Type: EventOutOfBounds, ShotID: a.ShotID, X: a.X, Y: a.Y})
		s.phaseChanged(prev)
	}
}

// scheduleFinish queues the end of a resolution window. The delay is counted
// in whole ticks, so it lands exactly on the tick that covers it.
func (s *Simulation) scheduleFinish(shot string, delay time.Duration, outcome Outcome) {
	ticks := time.Duration(s.cfg.Ticks(delay))
	s.sched.After(shot, ticks*s.dt, func() {
		s.finishShot(shot, outcome)
	})
}

// finishShot ends a resolution window. Tasks belonging to an arrow that is no
// longer live are ignored.
func (s *Simulation) finishShot(shot string, outcome Outcome) {
	if s.arrow == nil || s.arrow.ShotID != shot {
		return
	}
	prev := s.progress.Phase
	s.arrow = nil
	switch outcome {
	case OutcomeHit:
		s.banner.Clear()
		s.progress.FinishHit()
	case OutcomeMiss:
		s.progress.FinishMiss()
	}
	s.phaseChanged(prev)
}

// --- Lifecycle actions ---

// StartGame leaves the menu for level 1. It returns false for a blank name
// or when not in the menu.
func (s *Simulation) StartGame(name string) bool {
	prev := s.progress.Phase
	if !s.progress.StartGame(name) {
		return false
	}
	s.sessionID = s.newID()
	s.clearShot()
	s.enterLevel()
	s.log.Info("game started",
		slog.String("player", s.progress.Player),
		slog.String("session", s.sessionID))
	s.phaseChanged(prev)
	return true
}

// AdvanceLevel moves past a completed level.
func (s *Simulation) AdvanceLevel() bool {
	prev := s.progress.Phase
	if !s.progress.AdvanceLevel() {
		return false
	}
	if s.progress.Phase == PhaseAiming {
		s.enterLevel()
	}
	s.phaseChanged(prev)
	return true
}

// RetryLevel restarts the current level after a game over.
func (s *Simulation) RetryLevel() bool {
	prev := s.progress.Phase
	if !s.progress.RetryLevel() {
		return false
	}
	s.enterLevel()
	s.phaseChanged(prev)
	return true
}

// PlayAgain restarts from level 1 after the champion screen.
func (s *Simulation) PlayAgain() bool {
	prev := s.progress.Phase
	if !s.progress.PlayAgain() {
		return false
	}
	s.enterLevel()
	s.phaseChanged(prev)
	return true
}

// ResetToMenu abandons the session from any phase. Pending resolution tasks
// are discarded, so a hit or miss in its window never lands afterwards.
func (s *Simulation) ResetToMenu() {
	prev := s.progress.Phase
	s.sched.CancelAll()
	s.clearShot()
	s.aim = Aim{}
	s.particles.Reset()
	s.progress.ResetToMenu()
	s.sessionID = ""
	s.enterLevel()
	s.phaseChanged(prev)
}

// ToggleMute flips the mute preference and returns the new value.
func (s *Simulation) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// SetLayout changes the playfield size. Bow and target are refitted; motion,
// ground and escape bounds follow from the new size on the next tick.
func (s *Simulation) SetLayout(width, height float64) bool {
	l := Layout{Width: width, Height: height}
	if !l.valid() {
		return false
	}
	s.layout = l
	s.bow = l.Bow()
	cfg, _ := Level(s.progress.Level)
	s.target.fit(cfg, l)
	return true
}

// --- Input ---

// PointerDown begins drawing the bow when a shot is allowed. The press also
// aims, as a touch start does.
func (s *Simulation) PointerDown(x, y float64) bool {
	if !s.progress.CanShoot() || s.arrow != nil {
		return false
	}
	s.aim.begin()
	s.aim.point(s.bow, x, y)
	return true
}

// PointerMove aims the bow at (x, y) and, while pulling, sets the strength
// from the distance to the bow.
func (s *Simulation) PointerMove(x, y float64) {
	s.aim.point(s.bow, x, y)
}

// PointerUp releases the string. A pull weaker than MinReleaseStrength, or a
// release when no shot is allowed, only cancels the pull. It reports whether
// an arrow was fired.
func (s *Simulation) PointerUp() bool {
	strength, ok := s.aim.release()
	if !ok || !s.progress.CanShoot() || s.arrow != nil {
		return false
	}
	// Any task still pending belongs to an earlier shot.
	s.sched.CancelAll()

	prev := s.progress.Phase
	s.arrow = NewProjectile(s.newID(), s.bow, s.aim.Angle, strength)
	s.progress.Release()
	s.log.Debug("arrow released",
		slog.String("shot", s.arrow.ShotID),
		slog.Float64("angle", s.aim.Angle),
		slog.Float64("strength", strength))
	s.phaseChanged(prev)
	return true
}

// --- Events ---

// AddListener registers l for every event.
func (s *Simulation) AddListener(l Listener) CallbackHandle {
	return s.listeners.add(l)
}

// OnEvent registers fn for every event.
func (s *Simulation) OnEvent(fn func(Event)) CallbackHandle {
	return s.listeners.add(ListenerFunc(fn))
}

func (s *Simulation) emit(e Event) {
	e.Phase = s.progress.Phase
	if s.cfg.Debug {
		s.stats.events++
	}
	s.listeners.emit(e)
}

func (s *Simulation) phaseChanged(prev Phase) {
	if s.progress.Phase == prev {
		return
	}
	s.log.Debug("phase changed",
		slog.String("from", prev.String()),
		slog.String("to", s.progress.Phase.String()),
		slog.Int("level", s.progress.Level))
	s.emit(Event{Type: EventPhaseChanged})
}

// --- Internal helpers ---

// enterLevel places bow and target for the current level.
func (s *Simulation) enterLevel() {
	cfg, _ := Level(s.progress.Level)
	s.bow = s.layout.Bow()
	s.target = NewTarget(cfg, s.layout)
}

// clearShot drops the live arrow, its pending tasks, the banner and any pull.
func (s *Simulation) clearShot() {
	if s.arrow != nil {
		s.sched.Cancel(s.arrow.ShotID)
		s.arrow = nil
	}
	s.banner.Clear()
	s.aim.cancel()
}

// --- Accessors ---

// Progress returns a copy of the progress record.
func (s *Simulation) Progress() Progress { return s.progress }

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.progress.Phase }

// Layout returns the current playfield.
func (s *Simulation) Layout() Layout { return s.layout }

// Bow returns the bow anchor.
func (s *Simulation) Bow() Vec2 { return s.bow }

// Aim returns the current aim.
func (s *Simulation) Aim() Aim { return s.aim }

// Target returns a copy of the target.
func (s *Simulation) Target() Target { return s.target }

// Arrow returns a copy of the live arrow, or nil.
func (s *Simulation) Arrow() *Projectile {
	if s.arrow == nil {
		return nil
	}
	a := *s.arrow
	return &a
}

// Particles returns the live particles; see ParticleSystem.Particles.
func (s *Simulation) Particles() []Particle { return s.particles.Particles() }

// Banner returns the banner state.
func (s *Simulation) Banner() Banner { return s.banner }

// Muted reports the mute preference.
func (s *Simulation) Muted() bool { return s.muted }

// SessionID returns the id assigned by the last StartGame, or "" in the menu.
func (s *Simulation) SessionID() string { return s.sessionID }

// Tick returns the number of Updates run.
func (s *Simulation) Tick() uint64 { return s.tick }

// Elapsed returns the simulation time covered by all Updates.
func (s *Simulation) Elapsed() time.Duration { return s.sched.Now() }

// TickDuration returns the simulation time covered by one Update.
func (s *Simulation) TickDuration() time.Duration { return s.dt }
