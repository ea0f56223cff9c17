// Package agents provides the rover data model: mission roles, cargo, and
// each rover's private partial map of the world.
package agents

import (
	"github.com/talgya/rover-colony/internal/world"
)

// AgentID is a unique identifier for an agent.
type AgentID uint64

// Role is an agent's mission. The set is closed.
type Role uint8

const (
	RoleScout     Role = iota // Explores unknown terrain
	RoleHarvester             // Carries ore and energy home
	RoleScientist             // Carries science samples home
)

// NumRoles is the number of mission roles.
const NumRoles = 3

// Roles lists every role in declaration order.
var Roles = [NumRoles]Role{RoleScout, RoleHarvester, RoleScientist}

func (r Role) String() string {
	switch r {
	case RoleScout:
		return "Scout"
	case RoleHarvester:
		return "Harvester"
	case RoleScientist:
		return "Scientist"
	default:
		return "Unknown"
	}
}

// Agent is a single rover.
type Agent struct {
	ID       AgentID        `json:"id"`
	Name     string         `json:"name"`
	Position world.Position `json:"position"`
	Role     Role           `json:"role"`

	// Cargo holds at most one unit. TerrainVoid means empty.
	Cargo world.Terrain `json:"cargo"`

	// MissionCounter is role-specific. Scouts count unknown cells revealed
	// since their last visit home.
	MissionCounter int `json:"mission_counter"`

	// Goal is where the movement collaborator is steering the agent.
	// Nil means awaiting reassignment.
	Goal *world.Position `json:"goal,omitempty"`

	// Known is the agent's private, possibly stale view of the world.
	// Same dimensions as the base's canonical grid.
	Known *world.TerrainGrid `json:"-"`

	BornTick uint64 `json:"born_tick"`
}

// IsCarrying reports whether the cargo slot is occupied.
func (a *Agent) IsCarrying() bool {
	return a.Cargo != world.TerrainVoid
}

// AtBase reports whether the agent stands on the base position.
func (a *Agent) AtBase(base world.Position) bool {
	return a.Position == base
}

// SetGoal steers the agent toward p.
func (a *Agent) SetGoal(p world.Position) {
	a.Goal = &p
}

// ClearGoal marks the agent as awaiting reassignment.
func (a *Agent) ClearGoal() {
	a.Goal = nil
}

// SetCargo replaces the cargo slot.
func (a *Agent) SetCargo(t world.Terrain) {
	a.Cargo = t
}

// SetMissionCounter replaces the role-specific counter.
func (a *Agent) SetMissionCounter(n int) {
	a.MissionCounter = n
}

// KnownMap returns the agent's partial map.
func (a *Agent) KnownMap() *world.TerrainGrid {
	return a.Known
}

// SetKnownMap replaces the agent's partial map.
func (a *Agent) SetKnownMap(m *world.TerrainGrid) {
	a.Known = m
}

// Marker returns the display marker for the agent's current cargo state.
func (a *Agent) Marker() world.Terrain {
	if a.IsCarrying() {
		return world.TerrainLadenAgent
	}
	return world.TerrainAgent
}

// CountRoles returns the number of agents in each role.
func CountRoles(agents []*Agent) [NumRoles]int {
	var counts [NumRoles]int
	for _, a := range agents {
		if int(a.Role) < NumRoles {
			counts[a.Role]++
		}
	}
	return counts
}
