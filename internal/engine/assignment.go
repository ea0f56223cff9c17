package engine

import (
	"log/slog"

	"github.com/talgya/rover-colony/internal/agents"
)

// assignDiscoveries drains the discovery queues into idle workers, in agent
// order. Harvesters take resource sites and scientists take science sites.
func (s *Simulation) assignDiscoveries(tick uint64) {
	for _, a := range s.Agents {
		if a.Goal != nil || a.IsCarrying() {
			continue
		}

		switch a.Role {
		case agents.RoleHarvester:
			if p, ok := s.Base.PopResource(); ok {
				a.SetGoal(p)
				slog.Debug("site assigned", "tick", tick, "agent", a.ID, "role", a.Role.String(), "site", p.String())
			}
		case agents.RoleScientist:
			if p, ok := s.Base.PopScience(); ok {
				a.SetGoal(p)
				slog.Debug("site assigned", "tick", tick, "agent", a.ID, "role", a.Role.String(), "site", p.String())
			}
		}
	}
}
