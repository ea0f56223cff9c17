// Agent spawning: issues IDs and callsigns and allocates each agent's
// private map.
package agents

import (
	"fmt"
	"math/rand"

	"github.com/talgya/rover-colony/internal/world"
)

// Spawner creates agents for the simulation.
type Spawner struct {
	rng    *rand.Rand
	nextID AgentID

	// Dimensions of every known map handed out.
	width  int
	height int
}

// NewSpawner creates an agent spawner with the given seed. Every agent it
// builds gets a width × height known map.
func NewSpawner(seed int64, width, height int) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed + 300)),
		nextID: 1,
		width:  width,
		height: height,
	}
}

// SetNextID sets the next agent ID to be issued.
func (s *Spawner) SetNextID(id AgentID) {
	s.nextID = id
}

// Spawn creates one agent at position with an empty cargo slot and an
// all-Void known map.
func (s *Spawner) Spawn(position world.Position, role Role, tick uint64) *Agent {
	id := s.nextID
	s.nextID++

	return &Agent{
		ID:       id,
		Name:     s.generateName(role, id),
		Position: position,
		Role:     role,
		Cargo:    world.TerrainVoid,
		Known:    world.NewTerrainGrid(s.width, s.height, world.TerrainVoid),
		BornTick: tick,
	}
}

// SpawnInitial creates the founding crew around the base: a scout on the
// base, a harvester one cell east, and a scientist one cell south.
func (s *Spawner) SpawnInitial(base world.Position) []*Agent {
	return []*Agent{
		s.Spawn(base, RoleScout, 0),
		s.Spawn(base.Add(world.Position{X: 1}), RoleHarvester, 0),
		s.Spawn(base.Add(world.Position{Y: 1}), RoleScientist, 0),
	}
}

func (s *Spawner) generateName(role Role, id AgentID) string {
	call := callsigns[s.rng.Intn(len(callsigns))]
	return fmt.Sprintf("%s-%s-%d", role, call, id)
}

var callsigns = []string{
	"Atlas", "Beagle", "Comet", "Dingo", "Ember", "Falcon", "Gecko", "Heron",
	"Ibis", "Jackal", "Kestrel", "Lynx", "Marten", "Newt", "Osprey", "Pika",
	"Quoll", "Raven", "Stoat", "Tern", "Urchin", "Vole", "Wren", "Yak",
}
