// Package world provides the terrain grid, terrain kinds, and world generation.
// Uses integer (x, y) coordinates on a rectangular, row-major grid.
package world

// Terrain is the kind of a single grid cell.
type Terrain uint8

const (
	TerrainVoid       Terrain = iota // Unknown, nothing observed yet
	TerrainGround                    // Open, buildable, passable
	TerrainWall                      // Impassable rock
	TerrainMountain                  // Impassable high ground
	TerrainOre                       // Harvestable ore deposit
	TerrainEnergy                    // Harvestable energy deposit
	TerrainScience                   // Science site, studied by scientists
	TerrainAgent                     // Display marker: agent with empty cargo
	TerrainLadenAgent                // Display marker: agent carrying cargo
)

// NumTerrains is the number of terrain kinds.
const NumTerrains = 9

// terrainInfo couples each terrain kind with its glyph and name.
var terrainInfo = [NumTerrains]struct {
	glyph rune
	name  string
}{
	TerrainVoid:       {' ', "Void"},
	TerrainGround:     {'.', "Ground"},
	TerrainWall:       {'#', "Wall"},
	TerrainMountain:   {'^', "Mountain"},
	TerrainOre:        {'O', "Ore"},
	TerrainEnergy:     {'E', "Energy"},
	TerrainScience:    {'S', "Science"},
	TerrainAgent:      {'R', "Agent"},
	TerrainLadenAgent: {'@', "LadenAgent"},
}

var glyphIndex = func() map[rune]Terrain {
	idx := make(map[rune]Terrain, NumTerrains)
	for t, info := range terrainInfo {
		idx[info.glyph] = Terrain(t)
	}
	return idx
}()

// Valid reports whether t is one of the nine terrain kinds.
func (t Terrain) Valid() bool {
	return t < NumTerrains
}

// Glyph returns the display/storage character for t.
// Invalid values render as '?'.
func (t Terrain) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return terrainInfo[t].glyph
}

// Name returns a human-readable name for t.
func (t Terrain) Name() string {
	if !t.Valid() {
		return "Unknown"
	}
	return terrainInfo[t].name
}

func (t Terrain) String() string {
	return t.Name()
}

// ParseGlyph maps a display character back to its terrain kind.
func ParseGlyph(r rune) (Terrain, bool) {
	t, ok := glyphIndex[r]
	return t, ok
}

// IsKnown reports whether the cell has been observed.
func (t Terrain) IsKnown() bool {
	return t != TerrainVoid
}

// IsResource reports whether t is a harvestable economic resource (ore or energy).
func (t Terrain) IsResource() bool {
	return t == TerrainOre || t == TerrainEnergy
}

// IsHarvestable reports whether an agent can pick t up as cargo.
func (t Terrain) IsHarvestable() bool {
	return t.IsResource() || t == TerrainScience
}

// IsPassable reports whether an agent can stand on a cell of kind t.
// Agent markers only appear in rendered frames and count as ground.
func (t Terrain) IsPassable() bool {
	switch t {
	case TerrainGround, TerrainOre, TerrainEnergy, TerrainScience, TerrainAgent, TerrainLadenAgent:
		return true
	}
	return false
}
