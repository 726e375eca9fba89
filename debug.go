package bullseye

import (
	"log/slog"
	"time"
)

// debugInterval is how many ticks are aggregated into one stats line.
const debugInterval = 60

// debugStats holds timing and population metrics for a window of ticks.
// Only populated when Config.Debug is true.
type debugStats struct {
	ticks     int
	updateSum time.Duration
	updateMax time.Duration
	peakAlive int
	events    int
}

func (d *debugStats) record(elapsed time.Duration, alive int) {
	d.ticks++
	d.updateSum += elapsed
	if elapsed > d.updateMax {
		d.updateMax = elapsed
	}
	if alive > d.peakAlive {
		d.peakAlive = alive
	}
}

// debugLog writes the window's stats and starts a new window once
// debugInterval ticks have been recorded.
func (s *Simulation) debugLog() {
	d := &s.stats
	if d.ticks < debugInterval {
		return
	}
	s.log.Debug("tick stats",
		slog.Uint64("tick", s.tick),
		slog.String("phase", s.progress.Phase.String()),
		slog.Duration("update_avg", d.updateSum/time.Duration(d.ticks)),
		slog.Duration("update_max", d.updateMax),
		slog.Int("particles_peak", d.peakAlive),
		slog.Int("events", d.events),
		slog.Int("pending_tasks", s.sched.Len()),
	)
	*d = debugStats{}
}
