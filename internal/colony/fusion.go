// Map fusion: reconciles the canonical grid with one agent's known grid.
package colony

import (
	"fmt"
	"log/slog"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/world"
)

// ErrDimensionMismatch is returned when the canonical and agent grids differ in size.
var ErrDimensionMismatch = world.ErrDimensionMismatch

func mismatch(canonical, view *world.TerrainGrid) error {
	return fmt.Errorf("canonical %s vs agent %s: %w", size(canonical), size(view), ErrDimensionMismatch)
}

func size(g *world.TerrainGrid) string {
	if g == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// ResolveCell picks the fused value of one cell from the canonical value b
// and the agent's value a. Values outside the nine kinds are read as Void.
// The first matching rule wins:
//
//  1. b Science, a Ground → Ground
//  2. b Ground, a Science → Ground
//  3. b Energy, a Ground  → Ground
//  4. b Ground, a Energy  → Ground
//  5. b Ore, a Ground     → Ground
//  6. b Ground, a Ore     → Ground
//  7. b known             → b
//  8. a known             → a
//  9. otherwise           → Void
//
// Rules 2, 4 and 6 drop a site the agent reports on a cell the base already
// holds as ground.
// TODO: revisit rules 2/4/6 once gameplay decides whether a freshly reported
// site should beat stale canonical ground.
func ResolveCell(b, a world.Terrain) world.Terrain {
	if !b.Valid() {
		b = world.TerrainVoid
	}
	if !a.Valid() {
		a = world.TerrainVoid
	}

	switch {
	case b == world.TerrainScience && a == world.TerrainGround:
		return world.TerrainGround
	case b == world.TerrainGround && a == world.TerrainScience:
		return world.TerrainGround
	case b == world.TerrainEnergy && a == world.TerrainGround:
		return world.TerrainGround
	case b == world.TerrainGround && a == world.TerrainEnergy:
		return world.TerrainGround
	case b == world.TerrainOre && a == world.TerrainGround:
		return world.TerrainGround
	case b == world.TerrainGround && a == world.TerrainOre:
		return world.TerrainGround
	case b != world.TerrainVoid:
		return b
	case a != world.TerrainVoid:
		return a
	default:
		return world.TerrainVoid
	}
}

// FuseGrids returns a new grid resolving canonical against view cell by cell.
// Neither input is modified.
func FuseGrids(canonical, view *world.TerrainGrid) (*world.TerrainGrid, error) {
	if canonical == nil || !canonical.SameSize(view) {
		return nil, mismatch(canonical, view)
	}

	fused := world.NewTerrainGrid(canonical.Width, canonical.Height, world.TerrainVoid)
	for y := 0; y < canonical.Height; y++ {
		for x := 0; x < canonical.Width; x++ {
			// Absent reads come back as the zero value, which is Void.
			b, _ := canonical.Get(x, y)
			a, _ := view.Get(x, y)
			fused.Set(world.Position{X: x, Y: y}, ResolveCell(b, a))
		}
	}
	return fused, nil
}

// Fuse merges the agent's known grid into the canonical grid. Afterwards both
// hold identical contents: the canonical grid is replaced by the fused grid
// and the agent's grid is overwritten in place with a copy of it. Newly seen
// sites are queued exactly once. Returns the fused grid.
func (b *Base) Fuse(a *agents.Agent) (*world.TerrainGrid, error) {
	fused, err := FuseGrids(b.canonical, a.Known)
	if err != nil {
		return nil, fmt.Errorf("fuse agent %d: %w", a.ID, err)
	}

	if n := b.recordDiscoveries(fused); n > 0 {
		slog.Debug("sites discovered",
			"agent", a.ID,
			"new", n,
			"resource_queue", b.resourceQueue.Len(),
			"science_queue", b.scienceQueue.Len(),
		)
	}

	b.canonical = fused
	if err := a.Known.CopyFrom(fused); err != nil {
		return nil, fmt.Errorf("fuse agent %d: %w", a.ID, err)
	}
	return fused, nil
}

// FuseAll fuses every agent in slice order, each against the canonical grid
// left by the previous one. Stops at the first error.
func (b *Base) FuseAll(population []*agents.Agent) error {
	for _, a := range population {
		if _, err := b.Fuse(a); err != nil {
			return err
		}
	}
	return nil
}
