package bullseye

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugStatsLogged(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.Debug = true
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for range debugInterval - 1 {
		s.Update()
	}
	if strings.Contains(buf.String(), "tick stats") {
		t.Fatal("stats logged before the interval elapsed")
	}
	s.Update()
	out := buf.String()
	if !strings.Contains(out, "tick stats") {
		t.Fatalf("no stats line in %q", out)
	}
	if !strings.Contains(out, "phase=menu") {
		t.Errorf("stats line missing phase: %q", out)
	}
	if s.stats.ticks != 0 {
		t.Errorf("window not reset: ticks = %d", s.stats.ticks)
	}
}

func TestDebugStatsRecord(t *testing.T) {
	var d debugStats
	d.record(3, 10)
	d.record(5, 4)
	if d.ticks != 2 || d.updateSum != 8 || d.updateMax != 5 || d.peakAlive != 10 {
		t.Errorf("stats = %+v", d)
	}
}

func TestDebugOffSkipsStats(t *testing.T) {
	s := newTestSimulation(t)
	for range debugInterval {
		s.Update()
	}
	if s.stats.ticks != 0 {
		t.Errorf("stats recorded with debug off: %+v", s.stats)
	}
}
