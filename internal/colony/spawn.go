package colony

import (
	"log/slog"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

// ChooseRole picks the role with the fewest members. Ties go to Scout, then
// Scientist, then Harvester.
func ChooseRole(counts [agents.NumRoles]int) agents.Role {
	scouts := counts[agents.RoleScout]
	harvesters := counts[agents.RoleHarvester]
	scientists := counts[agents.RoleScientist]

	switch {
	case scouts <= harvesters && scouts <= scientists:
		return agents.RoleScout
	case scientists <= scouts && scientists <= harvesters:
		return agents.RoleScientist
	default:
		return agents.RoleHarvester
	}
}

// CanAfford reports whether both ore and energy cover cost.
func (b *Base) CanAfford(cost uint64) bool {
	return b.Ore >= cost && b.Energy >= cost
}

// TrySpawn builds one new agent at the base when ore and energy both cover
// cost, balancing the population across roles, and deducts cost from both.
// The new agent's known map always matches the canonical grid's size.
// Returns nil and changes nothing when the base cannot afford it. The caller
// owns the cost curve.
func (b *Base) TrySpawn(population []*agents.Agent, cost uint64, spawner *agents.Spawner, tick uint64) *agents.Agent {
	if !b.CanAfford(cost) {
		return nil
	}

	counts := agents.CountRoles(population)
	role := ChooseRole(counts)

	a := spawner.Spawn(b.position, role, tick)
	if !b.canonical.SameSize(a.Known) {
		a.SetKnownMap(world.NewTerrainGrid(b.canonical.Width, b.canonical.Height, world.TerrainVoid))
	}
	b.Ore -= cost
	b.Energy -= cost

	slog.Info("agent spawned",
		"tick", tick,
		"agent", a.ID,
		"name", a.Name,
		"role", role.String(),
		"cost", cost,
		"scouts", counts[agents.RoleScout],
		"harvesters", counts[agents.RoleHarvester],
		"scientists", counts[agents.RoleScientist],
	)
	return a
}
