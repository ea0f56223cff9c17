// Simulation ties together the world, the base, and the rovers, and runs the
// tick phases in a fixed order.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/colony"
	"github.com/talgya/rover-colony/internal/world"
)

// Simulation holds the complete world state. World is the ground truth;
// the order of Agents decides fusion order.
type Simulation struct {
	World   *world.TerrainGrid
	Base    *colony.Base
	Agents  []*agents.Agent
	Spawner *agents.Spawner

	// SpawnCost is the ore and energy price of the next agent.
	// Starts at 1 and rises by 1 after every spawn.
	SpawnCost uint64

	Perceiver Perceiver
	Mover     Mover

	LastTick uint64 // Most recent tick processed

	// Statistics refreshed every tick.
	Stats SimStats
}

// SimStats tracks aggregate colony statistics.
type SimStats struct {
	Population     int                  `json:"population"`
	Roles          [agents.NumRoles]int `json:"roles"`
	Counters       colony.Counters      `json:"counters"`
	Spawned        int                  `json:"spawned"`
	Discovered     int                  `json:"discovered"`
	KnownCells     int                  `json:"known_cells"`
	ResourceQueued int                  `json:"resource_queued"`
	ScienceQueued  int                  `json:"science_queued"`
}

// NewSimulation creates a Simulation around a generated world. The base sits
// at the world center and the spawner sizes known maps to match.
func NewSimulation(truth *world.TerrainGrid, seed int64, perceiver Perceiver, mover Mover) *Simulation {
	home := world.Center(truth.Width, truth.Height)
	return &Simulation{
		World:     truth,
		Base:      colony.NewBase(truth.Width, truth.Height, home),
		Spawner:   agents.NewSpawner(seed, truth.Width, truth.Height),
		SpawnCost: 1,
		Perceiver: perceiver,
		Mover:     mover,
	}
}

// SeedCrew places the founding crew and gives each a first look around.
func (s *Simulation) SeedCrew() {
	s.Agents = append(s.Agents, s.Spawner.SpawnInitial(s.Base.Position())...)
	for _, a := range s.Agents {
		s.Perceiver.Perceive(a, s.World)
	}
	s.updateStats()
}

// Step runs one tick. Every agent finishes a phase before any agent starts
// the next: move, perceive, fuse or dock, then spawn and assign.
func (s *Simulation) Step(tick uint64) error {
	s.LastTick = tick
	home := s.Base.Position()

	for _, a := range s.Agents {
		s.Mover.Move(a, s.World, home)
	}

	for _, a := range s.Agents {
		revealed := s.Perceiver.Perceive(a, s.World)
		if a.Role == agents.RoleScout {
			a.MissionCounter += revealed
		}
	}

	if err := s.fuseAgents(); err != nil {
		return err
	}

	s.spawn(tick)
	s.assignDiscoveries(tick)
	s.updateStats()
	return nil
}

// fuseAgents docks agents at the base and fuses everyone else, in order.
func (s *Simulation) fuseAgents() error {
	for _, a := range s.Agents {
		docked, err := s.Base.Settle(a)
		if err != nil {
			return fmt.Errorf("settle agent %d: %w", a.ID, err)
		}
		if docked {
			continue
		}
		if _, err := s.Base.Fuse(a); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) spawn(tick uint64) {
	a := s.Base.TrySpawn(s.Agents, s.SpawnCost, s.Spawner, tick)
	if a == nil {
		return
	}
	s.Agents = append(s.Agents, a)
	s.SpawnCost++
	s.Stats.Spawned++
}

func (s *Simulation) updateStats() {
	s.Stats.Population = len(s.Agents)
	s.Stats.Roles = agents.CountRoles(s.Agents)
	s.Stats.Counters = s.Base.Counters()
	s.Stats.Discovered = s.Base.Discovered().Len()
	s.Stats.KnownCells = s.Base.Canonical().Count(world.Terrain.IsKnown)
	s.Stats.ResourceQueued = len(s.Base.ResourceQueue())
	s.Stats.ScienceQueued = len(s.Base.ScienceQueue())
}

// Report logs a colony summary.
func (s *Simulation) Report(tick uint64) {
	total := s.World.Width * s.World.Height
	explored := 0.0
	if total > 0 {
		explored = float64(s.Stats.KnownCells) / float64(total) * 100
	}
	slog.Info("colony report",
		"tick", humanize.Comma(int64(tick)),
		"population", s.Stats.Population,
		"scouts", s.Stats.Roles[agents.RoleScout],
		"harvesters", s.Stats.Roles[agents.RoleHarvester],
		"scientists", s.Stats.Roles[agents.RoleScientist],
		"ore", humanize.Comma(int64(s.Stats.Counters.Ore)),
		"energy", humanize.Comma(int64(s.Stats.Counters.Energy)),
		"science", humanize.Comma(int64(s.Stats.Counters.Science)),
		"next_spawn_cost", s.SpawnCost,
		"discovered", s.Stats.Discovered,
		"explored", fmt.Sprintf("%.1f%%", explored),
	)
}
