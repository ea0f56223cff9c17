package engine

import (
	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

// Perceiver updates an agent's known map from the ground truth.
type Perceiver interface {
	// Perceive returns the number of cells that were unknown to the agent
	// before this observation.
	Perceive(a *agents.Agent, truth *world.TerrainGrid) int
}

// RadiusPerceiver reveals every cell within Radius (king-move distance) of the agent.
type RadiusPerceiver struct {
	Radius int
}

// Perceive copies the visible square of truth into the agent's known map.
func (p RadiusPerceiver) Perceive(a *agents.Agent, truth *world.TerrainGrid) int {
	revealed := 0
	for dy := -p.Radius; dy <= p.Radius; dy++ {
		for dx := -p.Radius; dx <= p.Radius; dx++ {
			pos := a.Position.Add(world.Position{X: dx, Y: dy})
			t, ok := truth.At(pos)
			if !ok {
				continue
			}
			if prev, _ := a.Known.At(pos); prev == world.TerrainVoid {
				revealed++
			}
			a.Known.Set(pos, t)
		}
	}
	return revealed
}
