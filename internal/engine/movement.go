// Agent movement: goal-directed stepping over each agent's own map.
package engine

import (
	"math/rand"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

// Mover advances one agent by at most one cell per tick. It may pick up
// cargo and consume the site in truth.
type Mover interface {
	Move(a *agents.Agent, truth *world.TerrainGrid, home world.Position)
}

// DefaultMover routes agents with a breadth-first search over their known
// map, treating unknown cells as open.
//
//   - Laden agents head home.
//   - Scouts head for the nearest unknown cell until they have revealed
//     ScoutRange cells, then head home to report.
//   - Harvesters and scientists walk to their goal, pick up the site if it
//     is still there, and head home. Without a goal they wait at home.
type DefaultMover struct {
	ScoutRange int
	rng        *rand.Rand
}

// NewDefaultMover creates a mover whose tie-breaking wander is seeded.
func NewDefaultMover(seed int64, scoutRange int) *DefaultMover {
	return &DefaultMover{
		ScoutRange: scoutRange,
		rng:        rand.New(rand.NewSource(seed + 500)),
	}
}

// Move advances a by one step.
func (m *DefaultMover) Move(a *agents.Agent, truth *world.TerrainGrid, home world.Position) {
	switch {
	case a.IsCarrying():
		m.stepToward(a, truth, home)
	case a.Role == agents.RoleScout:
		m.explore(a, truth, home)
	default:
		m.work(a, truth, home)
	}
}

func (m *DefaultMover) explore(a *agents.Agent, truth *world.TerrainGrid, home world.Position) {
	if a.MissionCounter >= m.ScoutRange {
		m.stepToward(a, truth, home)
		return
	}
	next, ok := firstStep(a.Known, a.Position, func(p world.Position) bool {
		t, _ := a.Known.At(p)
		return t == world.TerrainVoid
	})
	if !ok {
		m.wander(a, truth)
		return
	}
	tryStep(a, truth, next)
}

func (m *DefaultMover) work(a *agents.Agent, truth *world.TerrainGrid, home world.Position) {
	if a.Goal == nil {
		if !a.AtBase(home) {
			m.stepToward(a, truth, home)
		}
		return
	}

	goal := *a.Goal
	if a.Position == goal {
		m.collect(a, truth, home)
		return
	}
	m.stepToward(a, truth, goal)
	if a.Position == goal {
		m.collect(a, truth, home)
	}
}

// collect picks up the site under the agent when it matches the agent's role.
func (m *DefaultMover) collect(a *agents.Agent, truth *world.TerrainGrid, home world.Position) {
	t, _ := truth.At(a.Position)
	if !canCarry(a.Role, t) {
		// Site already taken or never there.
		a.ClearGoal()
		return
	}
	a.SetCargo(t)
	truth.Set(a.Position, world.TerrainGround)
	a.SetGoal(home)
}

func canCarry(role agents.Role, t world.Terrain) bool {
	switch role {
	case agents.RoleHarvester:
		return t.IsResource()
	case agents.RoleScientist:
		return t == world.TerrainScience
	}
	return false
}

func (m *DefaultMover) stepToward(a *agents.Agent, truth *world.TerrainGrid, target world.Position) {
	if a.Position == target {
		return
	}
	next, ok := firstStep(a.Known, a.Position, func(p world.Position) bool {
		return p == target
	})
	if !ok {
		m.wander(a, truth)
		return
	}
	if !tryStep(a, truth, next) {
		m.wander(a, truth)
	}
}

// wander takes a random passable step.
func (m *DefaultMover) wander(a *agents.Agent, truth *world.TerrainGrid) {
	var open []world.Position
	for _, n := range a.Position.Neighbors() {
		if t, ok := truth.At(n); ok && t.IsPassable() {
			open = append(open, n)
		}
	}
	if len(open) == 0 {
		return
	}
	a.Position = open[m.rng.Intn(len(open))]
}

// tryStep moves a onto next if the real terrain allows it.
func tryStep(a *agents.Agent, truth *world.TerrainGrid, next world.Position) bool {
	t, ok := truth.At(next)
	if !ok || !t.IsPassable() {
		return false
	}
	a.Position = next
	return true
}

// firstStep runs a breadth-first search over known from start and returns the
// first step on a shortest path to the nearest cell satisfying isTarget.
// Unknown cells count as open; known rock does not.
func firstStep(known *world.TerrainGrid, start world.Position, isTarget func(world.Position) bool) (world.Position, bool) {
	if isTarget(start) {
		return start, false
	}

	// parent[p] is the cell p was reached from.
	parent := world.NewGrid(known.Width, known.Height, world.Position{X: -1, Y: -1})
	parent.Set(start, start)
	queue := []world.Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range cur.Neighbors() {
			t, ok := known.At(n)
			if !ok || !(t.IsPassable() || t == world.TerrainVoid) {
				continue
			}
			if seen, _ := parent.At(n); seen.X >= 0 {
				continue
			}
			parent.Set(n, cur)

			if isTarget(n) {
				// Walk back to the cell adjacent to start.
				step := n
				for {
					prev, _ := parent.At(step)
					if prev == start {
						return step, true
					}
					step = prev
				}
			}
			queue = append(queue, n)
		}
	}
	return world.Position{}, false
}
