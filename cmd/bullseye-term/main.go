// Command bullseye-term runs the archery game in a terminal. The mouse draws
// the bow; the playfield is scaled onto the terminal grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bullseye"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bullseye-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := bullseye.ConfigFromEnv()
	if err != nil {
		return err
	}

	tps := flag.Int("tps", cfg.TPS, "simulation ticks per second")
	seed := flag.Uint64("seed", cfg.Seed, "particle seed (0 = time based)")
	debug := flag.Bool("debug", cfg.Debug, "log tick stats")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	scriptPath := flag.String("script", "", "JSON input script to play back")
	flag.Parse()

	cfg.TPS = *tps
	cfg.Seed = *seed
	cfg.Debug = *debug

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	cfg.Logger = logger

	sim, err := bullseye.NewSimulation(cfg)
	if err != nil {
		return err
	}

	var script *bullseye.Script
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = bullseye.LoadScript(data); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	g := newTermGame(screen, sim, logger)
	g.script = script

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("terminal session started")
	return g.run(ctx)
}
