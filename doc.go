// Package bullseye is the simulation core of a 2D archery game: drag to draw
// the bow, release to loose an arrow, hit the target.
//
// The package owns every rule and no pixels. A render surface (the
// [Ebitengine] window in cmd/bullseye, the terminal in cmd/bullseye-term)
// calls [Simulation.Update] once per frame, forwards pointer input and
// lifecycle actions between frames, and draws from [Simulation.Frame].
//
// # Quick start
//
//	sim, err := bullseye.NewSimulation(bullseye.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	sim.StartGame("Robin")
//
//	// per frame
//	sim.PointerDown(x, y) // or PointerMove / PointerUp
//	sim.Update()
//	frame := sim.Frame()
//
// # Phases
//
// A playthrough moves through [PhaseMenu], [PhaseAiming], [PhaseFlight] and
// the three waiting screens [PhaseLevelComplete], [PhaseGameOver] and
// [PhaseChampion]. [Progress] holds the authoritative record; every action
// that is not valid from the current phase returns false and changes nothing.
// [Simulation.ResetToMenu] is valid from anywhere and always yields the same
// baseline.
//
// # Shots
//
// Pull strength is half the pointer distance from the bow, capped at
// [MaxStrength]. Releasing below [MinReleaseStrength] cancels the pull. A
// released arrow flies under [Gravity] and is tested each tick against the
// target circle, the ground line and the playfield edges, in that order
// (see [Resolve]).
//
// A hit scores [PointsPerHit] and keeps the quiver; a miss spends an arrow.
// Either one holds the arrow on screen for a resolution window
// ([HitResolveDelay], [MissResolveDelay]) measured in simulation time, then
// returns to aiming or ends the level. An arrow that leaves the playfield is
// dropped at once with no effect on score or arrows.
//
// # Timing
//
// Time only moves inside Update. Each call covers [Config.TPS]⁻¹ seconds;
// delayed work is queued on a [Scheduler] keyed by shot id, so abandoning a
// shot (a reset, a new release) drops exactly that shot's pending work.
//
// # Events
//
// [Simulation.AddListener] and [Simulation.OnEvent] receive hit, miss,
// out-of-bounds and phase-change notifications synchronously from inside the
// frame. Frontends use them for sound cues and screen flashes.
//
// # Scripted input
//
// [LoadScript] reads a JSON list of steps (start, shoot, drag, waitPhase,
// screenshot, ...) and plays them one frame at a time through the same
// entry points as real input. Both frontends accept a script via -script.
//
// [Ebitengine]: https://ebitengine.org
package bullseye
