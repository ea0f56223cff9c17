// Command colonysim runs the rover colony simulation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/talgya/rover-colony/internal/config"
	"github.com/talgya/rover-colony/internal/engine"
	"github.com/talgya/rover-colony/internal/render"
	"github.com/talgya/rover-colony/internal/world"
)

const defaultConfigPath = "configs/colony.yaml"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run", uuid.NewString())
	slog.SetDefault(logger)

	// Resolve the seed once so world, spawner, and mover all share it.
	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63()
	}

	slog.Info("Rover Colony simulation",
		"seed", cfg.Seed,
		"width", cfg.Width,
		"height", cfg.Height,
		"fog_of_war", cfg.FogOfWar,
	)

	// ── World ─────────────────────────────────────────────────────────
	truth := world.Generate(cfg.GenConfig())
	for t, c := range world.TerrainCounts(truth) {
		if c > 0 {
			slog.Info("terrain", "type", world.Terrain(t).Name(), "count", c)
		}
	}

	// ── Simulation ────────────────────────────────────────────────────
	sim := engine.NewSimulation(truth, cfg.Seed,
		engine.RadiusPerceiver{Radius: cfg.PerceptionRadius},
		engine.NewDefaultMover(cfg.Seed, cfg.ScoutRange),
	)
	sim.SeedCrew()

	eng := engine.NewEngine()
	eng.Interval = cfg.TickInterval()
	eng.MaxTicks = cfg.MaxTicks
	eng.ReportEvery = cfg.ReportEvery
	eng.OnTick = func(tick uint64) error {
		if err := sim.Step(tick); err != nil {
			return err
		}
		if cfg.Render {
			draw(sim, cfg.FogOfWar, cfg.Seed)
		}
		return nil
	}
	eng.OnReport = sim.Report

	// ── Start ─────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Render {
		draw(sim, cfg.FogOfWar, cfg.Seed)
	}
	if err := eng.Run(ctx); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	sim.Report(eng.Tick)
	fmt.Printf("Colony stopped at tick %d with %d rovers (seed %d).\n",
		eng.Tick, len(sim.Agents), cfg.Seed)
}

// loadConfig reads COLONY_CONFIG (or the default path when present) and
// applies environment overrides.
func loadConfig() (config.Config, error) {
	path := os.Getenv("COLONY_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
		cfg = config.Default()
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func draw(sim *engine.Simulation, fog bool, seed int64) {
	view := sim.World
	if fog {
		view = sim.Base.Canonical()
	}
	fmt.Print(render.ClearScreen)
	fmt.Printf("tick %d  seed %d  next rover costs %d ore + %d energy  (Ctrl+C to stop)\n",
		sim.LastTick, seed, sim.SpawnCost, sim.SpawnCost)
	fmt.Print(render.Frame(view, sim.Agents, sim.Base))
}
