package colony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

func TestResolveCell(t *testing.T) {
	const (
		V = world.TerrainVoid
		G = world.TerrainGround
		W = world.TerrainWall
		M = world.TerrainMountain
		O = world.TerrainOre
		E = world.TerrainEnergy
		S = world.TerrainScience
	)
	cases := []struct {
		name       string
		base, view world.Terrain
		want       world.Terrain
	}{
		{"science consumed", S, G, G},
		{"science behind known ground", G, S, G},
		{"energy consumed", E, G, G},
		{"energy behind known ground", G, E, G},
		{"ore consumed", O, G, G},
		{"ore behind known ground", G, O, G},
		{"canonical wins", W, M, W},
		{"canonical resource kept against void", O, V, O},
		{"canonical resource kept against other resource", O, E, O},
		{"canonical rock kept against ground", M, G, M},
		{"agent fills void", V, S, S},
		{"agent fills void with rock", V, W, W},
		{"unknown stays unknown", V, V, V},
		{"invalid canonical read as void", world.Terrain(200), G, G},
		{"invalid canonical never copied", world.NumTerrains, V, V},
		{"invalid agent value ignored", V, world.Terrain(42), V},
		{"invalid on both sides", world.Terrain(9), world.Terrain(99), V},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ResolveCell(c.base, c.view))
		})
	}
}

func TestFuseGrids_Identity(t *testing.T) {
	rows := []string{
		".#O ",
		"^ES.",
	}
	canonical := mustGrid(t, rows...)
	view := mustGrid(t, rows...)

	fused, err := FuseGrids(canonical, view)
	require.NoError(t, err)
	assert.True(t, fused.Equal(canonical))
	assert.NotSame(t, canonical, fused)
}

func TestFuseGrids_OnlyValidKinds(t *testing.T) {
	canonical := mustGrid(t, ".  ")
	canonical.Set(world.Pos(1, 0), world.Terrain(77))
	view := mustGrid(t, "  #")
	view.Set(world.Pos(0, 0), world.Terrain(250))

	fused, err := FuseGrids(canonical, view)
	require.NoError(t, err)
	assert.Zero(t, fused.Count(func(t world.Terrain) bool { return !t.Valid() }))
	assert.Equal(t, []string{". #"}, world.Rows(fused))
}

func TestFuseGrids_DimensionMismatch(t *testing.T) {
	_, err := FuseGrids(mustGrid(t, "..", ".."), mustGrid(t, "...", "..."))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FuseGrids(mustGrid(t, ".."), nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFuse_BothSurfacesAgree(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0),
		"..  ",
		"    ",
	)
	a := newTestAgent(t, 1, agents.RoleScout, world.Pos(1, 0),
		"  ##",
		"O E ",
	)
	known := a.Known

	fused, err := b.Fuse(a)
	require.NoError(t, err)

	assert.Equal(t, []string{"..##", "O E "}, world.Rows(fused))
	assert.Same(t, fused, b.Canonical())
	assert.Same(t, known, a.Known, "known map is overwritten in place")
	assert.NotSame(t, b.Canonical(), a.Known)
	assert.True(t, a.Known.Equal(b.Canonical()))

	assert.Equal(t, []world.Position{world.Pos(0, 1), world.Pos(2, 1)}, b.ResourceQueue())
	assert.Empty(t, b.ScienceQueue())
}

func TestFuse_Idempotent(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0),
		".S  ",
		"    ",
	)
	a := newTestAgent(t, 1, agents.RoleScout, world.Pos(0, 0),
		"    ",
		"OE#.",
	)

	first, err := b.Fuse(a)
	require.NoError(t, err)
	resources := b.ResourceQueue()
	science := b.ScienceQueue()
	discovered := b.Discovered().Len()

	second, err := b.Fuse(a)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, resources, b.ResourceQueue())
	assert.Equal(t, science, b.ScienceQueue())
	assert.Equal(t, discovered, b.Discovered().Len())
	assert.Equal(t, 3, discovered)
}

func TestFuse_GroundBeatsFreshResource(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0), "..")
	a := newTestAgent(t, 1, agents.RoleHarvester, world.Pos(0, 0), ".O")

	_, err := b.Fuse(a)
	require.NoError(t, err)

	assert.Equal(t, world.TerrainGround, cell(t, b.Canonical(), 1, 0))
	assert.Equal(t, world.TerrainGround, cell(t, a.Known, 1, 0))
	assert.Empty(t, b.ResourceQueue())
	assert.False(t, b.Discovered().Contains(world.Pos(1, 0)))
}

func TestFuse_VoidTakesFreshResourceOnce(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0), ". ")
	a := newTestAgent(t, 1, agents.RoleHarvester, world.Pos(0, 0), " O")

	for i := 0; i < 3; i++ {
		_, err := b.Fuse(a)
		require.NoError(t, err)
	}

	assert.Equal(t, world.TerrainOre, cell(t, b.Canonical(), 1, 0))
	assert.Equal(t, []world.Position{world.Pos(1, 0)}, b.ResourceQueue())
}

func TestFuse_DiscoveryIsPermanent(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0), "  ")
	finder := newTestAgent(t, 1, agents.RoleScout, world.Pos(0, 0), "S ")
	_, err := b.Fuse(finder)
	require.NoError(t, err)

	p, ok := b.PopScience()
	require.True(t, ok)
	assert.Equal(t, world.Pos(0, 0), p)

	// The site gets consumed and reported as ground.
	consumer := newTestAgent(t, 2, agents.RoleScientist, world.Pos(0, 0), ". ")
	_, err = b.Fuse(consumer)
	require.NoError(t, err)
	assert.Equal(t, world.TerrainGround, cell(t, b.Canonical(), 0, 0))

	// A stale view still showing the site changes nothing.
	stale := newTestAgent(t, 3, agents.RoleScout, world.Pos(0, 0), "S ")
	_, err = b.Fuse(stale)
	require.NoError(t, err)

	assert.Equal(t, world.TerrainGround, cell(t, b.Canonical(), 0, 0))
	assert.Empty(t, b.ScienceQueue())
	assert.True(t, b.Discovered().Contains(world.Pos(0, 0)))
	assert.Equal(t, 1, b.Discovered().Len())
}

func TestFuse_DimensionMismatchLeavesStateAlone(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0), "..")
	before := b.Canonical().Clone()
	a := newTestAgent(t, 7, agents.RoleScout, world.Pos(0, 0), "O..")

	_, err := b.Fuse(a)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.True(t, before.Equal(b.Canonical()))
	assert.Empty(t, b.ResourceQueue())
}

func TestFuseAll_OrderIsObservable(t *testing.T) {
	run := func(order ...int) *Base {
		b := newTestBase(t, world.Pos(0, 0), "  ")
		population := []*agents.Agent{
			newTestAgent(t, 1, agents.RoleScout, world.Pos(0, 0), " O"),
			newTestAgent(t, 2, agents.RoleScout, world.Pos(0, 0), " ."),
		}
		var ordered []*agents.Agent
		for _, i := range order {
			ordered = append(ordered, population[i])
		}
		require.NoError(t, b.FuseAll(ordered))
		return b
	}

	finderFirst := run(0, 1)
	assert.Equal(t, world.TerrainGround, cell(t, finderFirst.Canonical(), 1, 0))
	assert.Equal(t, []world.Position{world.Pos(1, 0)}, finderFirst.ResourceQueue())

	groundFirst := run(1, 0)
	assert.Equal(t, world.TerrainGround, cell(t, groundFirst.Canonical(), 1, 0))
	assert.Empty(t, groundFirst.ResourceQueue())

	// Same inputs, same order, same outcome.
	again := run(0, 1)
	assert.True(t, again.Canonical().Equal(finderFirst.Canonical()))
	assert.Equal(t, finderFirst.ResourceQueue(), again.ResourceQueue())
}

func TestFuseAll_StopsAtFirstError(t *testing.T) {
	b := newTestBase(t, world.Pos(0, 0), "  ")
	population := []*agents.Agent{
		newTestAgent(t, 1, agents.RoleScout, world.Pos(0, 0), "O "),
		newTestAgent(t, 2, agents.RoleScout, world.Pos(0, 0), "   "),
		newTestAgent(t, 3, agents.RoleScout, world.Pos(0, 0), " E"),
	}
	err := b.FuseAll(population)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, []world.Position{world.Pos(0, 0)}, b.ResourceQueue())
}
