// Package colony implements the base: the canonical map shared by every
// rover, the discovery queues, cargo settlement, and spawning.
package colony

import (
	"github.com/talgya/rover-colony/internal/world"
)

// Counters holds the base's resource stock.
type Counters struct {
	Ore     uint64 `json:"ore"`
	Energy  uint64 `json:"energy"`
	Science uint64 `json:"science"`
}

// Base owns the canonical grid, the resource counters, and the discovery state.
// Only the fusion code path writes into the canonical grid.
type Base struct {
	Ore     uint64
	Energy  uint64
	Science uint64

	canonical *world.TerrainGrid
	position  world.Position

	resourceQueue Queue
	scienceQueue  Queue
	discovered    DiscoverySet
}

// NewBase creates a base at position with an all-Void width × height canonical grid.
func NewBase(width, height int, position world.Position) *Base {
	return &Base{
		canonical:  world.NewTerrainGrid(width, height, world.TerrainVoid),
		position:   position,
		discovered: newDiscoverySet(),
	}
}

// Position returns the base's fixed world position.
func (b *Base) Position() world.Position {
	return b.position
}

// Canonical returns the base's authoritative grid.
func (b *Base) Canonical() *world.TerrainGrid {
	return b.canonical
}

// SetCanonical replaces the canonical grid. The new grid must keep the
// existing dimensions.
func (b *Base) SetCanonical(m *world.TerrainGrid) error {
	if !b.canonical.SameSize(m) {
		return mismatch(b.canonical, m)
	}
	b.canonical = m
	return nil
}

// Counters returns a snapshot of the resource counters.
func (b *Base) Counters() Counters {
	return Counters{Ore: b.Ore, Energy: b.Energy, Science: b.Science}
}

// AddOre credits one unit of ore.
func (b *Base) AddOre() {
	b.Ore++
}

// AddEnergy credits one unit of energy.
func (b *Base) AddEnergy() {
	b.Energy++
}

// AddScience credits one unit of science.
func (b *Base) AddScience() {
	b.Science++
}

// Credit adds one unit of the counter matching cargo. Returns false for
// anything that is not a cargo kind.
func (b *Base) Credit(cargo world.Terrain) bool {
	switch cargo {
	case world.TerrainOre:
		b.AddOre()
	case world.TerrainEnergy:
		b.AddEnergy()
	case world.TerrainScience:
		b.AddScience()
	default:
		return false
	}
	return true
}
