package colony

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

func mustGrid(t *testing.T, rows ...string) *world.TerrainGrid {
	t.Helper()
	g, err := world.ParseGrid(rows)
	require.NoError(t, err)
	return g
}

// newTestBase builds a base at pos whose canonical grid holds rows.
func newTestBase(t *testing.T, pos world.Position, rows ...string) *Base {
	t.Helper()
	g := mustGrid(t, rows...)
	b := NewBase(g.Width, g.Height, pos)
	require.NoError(t, b.SetCanonical(g))
	return b
}

func newTestAgent(t *testing.T, id agents.AgentID, role agents.Role, pos world.Position, rows ...string) *agents.Agent {
	t.Helper()
	return &agents.Agent{
		ID:       id,
		Role:     role,
		Position: pos,
		Known:    mustGrid(t, rows...),
	}
}

func cell(t *testing.T, g *world.TerrainGrid, x, y int) world.Terrain {
	t.Helper()
	v, ok := g.Get(x, y)
	require.True(t, ok)
	return v
}
