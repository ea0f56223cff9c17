package colony

import (
	"fmt"
	"log/slog"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

// Settle docks an agent standing on the base: scouts restart their mission
// count, laden workers drop their goal, cargo is credited and emptied, and
// the agent's map is fused. Returns false without touching anything when the
// agent is elsewhere.
//
// Settling again without moving credits nothing more, since the first call
// empties the cargo slot. An agent whose map cannot be fused is rejected
// before any counter, cargo or goal changes.
func (b *Base) Settle(a *agents.Agent) (bool, error) {
	if !a.AtBase(b.position) {
		return false, nil
	}
	if !b.canonical.SameSize(a.Known) {
		return true, fmt.Errorf("fuse agent %d: %w", a.ID, mismatch(b.canonical, a.Known))
	}

	if a.Role == agents.RoleScout {
		a.SetMissionCounter(0)
	} else if a.IsCarrying() {
		a.ClearGoal()
	}

	if a.IsCarrying() {
		cargo := a.Cargo
		b.Credit(cargo)
		a.SetCargo(world.TerrainVoid)
		slog.Debug("cargo delivered",
			"agent", a.ID,
			"role", a.Role.String(),
			"cargo", cargo.String(),
			"ore", b.Ore,
			"energy", b.Energy,
			"science", b.Science,
		)
	}

	if _, err := b.Fuse(a); err != nil {
		return true, err
	}
	return true, nil
}
