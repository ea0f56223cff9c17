package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/rover-colony/internal/world"
)

func TestSpawner_Spawn(t *testing.T) {
	s := NewSpawner(42, 8, 5)
	a := s.Spawn(world.Pos(4, 2), RoleHarvester, 17)

	assert.Equal(t, AgentID(1), a.ID)
	assert.Equal(t, RoleHarvester, a.Role)
	assert.Equal(t, world.Pos(4, 2), a.Position)
	assert.False(t, a.IsCarrying())
	assert.Nil(t, a.Goal)
	assert.Equal(t, uint64(17), a.BornTick)
	assert.Contains(t, a.Name, "Harvester-")

	require.NotNil(t, a.Known)
	assert.Equal(t, 8, a.Known.Width)
	assert.Equal(t, 5, a.Known.Height)
	assert.Equal(t, 40, a.Known.Count(func(t world.Terrain) bool { return t == world.TerrainVoid }))

	b := s.Spawn(world.Pos(0, 0), RoleScout, 18)
	assert.Equal(t, AgentID(2), b.ID)
	assert.NotSame(t, a.Known, b.Known)
}

func TestSpawner_DeterministicNames(t *testing.T) {
	a := NewSpawner(9, 4, 4).SpawnInitial(world.Pos(2, 2))
	b := NewSpawner(9, 4, 4).SpawnInitial(world.Pos(2, 2))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
	}
}

func TestSpawner_SpawnInitial(t *testing.T) {
	crew := NewSpawner(1, 10, 10).SpawnInitial(world.Pos(5, 5))
	require.Len(t, crew, 3)

	assert.Equal(t, RoleScout, crew[0].Role)
	assert.Equal(t, world.Pos(5, 5), crew[0].Position)
	assert.Equal(t, RoleHarvester, crew[1].Role)
	assert.Equal(t, world.Pos(6, 5), crew[1].Position)
	assert.Equal(t, RoleScientist, crew[2].Role)
	assert.Equal(t, world.Pos(5, 6), crew[2].Position)

	assert.Equal(t, [NumRoles]int{1, 1, 1}, CountRoles(crew))
}

func TestAgent_Accessors(t *testing.T) {
	a := &Agent{Position: world.Pos(3, 3)}
	assert.True(t, a.AtBase(world.Pos(3, 3)))
	assert.False(t, a.AtBase(world.Pos(3, 4)))
	assert.Equal(t, world.TerrainAgent, a.Marker())

	a.SetCargo(world.TerrainOre)
	assert.True(t, a.IsCarrying())
	assert.Equal(t, world.TerrainLadenAgent, a.Marker())

	a.SetGoal(world.Pos(1, 1))
	require.NotNil(t, a.Goal)
	assert.Equal(t, world.Pos(1, 1), *a.Goal)
	a.ClearGoal()
	assert.Nil(t, a.Goal)

	a.SetMissionCounter(4)
	assert.Equal(t, 4, a.MissionCounter)

	m := world.NewTerrainGrid(2, 2, world.TerrainGround)
	a.SetKnownMap(m)
	assert.Same(t, m, a.KnownMap())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Scout", RoleScout.String())
	assert.Equal(t, "Scientist", RoleScientist.String())
	assert.Equal(t, "Unknown", Role(9).String())
}
