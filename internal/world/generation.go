// World generation using simplex noise.
// A noise layer classifies each cell into ground, rock, or resource deposits,
// a second layer seeds science sites, then a clearing is stamped under the base.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Width            int     // Grid width in cells
	Height           int     // Grid height in cells
	Seed             int64   // Random seed (0 = random)
	Scale            float64 // Noise sampling step per cell
	ClearingSize     int     // Side length of the centered ground clearing (odd)
	ScienceThreshold float64 // |science noise| below this turns ground into a science site (0 disables)
}

// DefaultGenConfig returns the standard 80×40 world.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:            80,
		Height:           40,
		Seed:             0,
		Scale:            0.1,
		ClearingSize:     7,
		ScienceThreshold: 0.004,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Width:            20,
		Height:           12,
		Seed:             42,
		Scale:            0.1,
		ClearingSize:     7,
		ScienceThreshold: 0.004,
	}
}

// Center returns the world-center position for a width × height grid.
func Center(width, height int) Position {
	return Position{X: width / 2, Y: height / 2}
}

// Generate creates the ground-truth terrain grid.
func Generate(cfg GenConfig) *TerrainGrid {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	terrainNoise := opensimplex.New(seed)
	scienceNoise := opensimplex.New(seed + 1)

	m := NewTerrainGrid(cfg.Width, cfg.Height, TerrainGround)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			sx := float64(x) * cfg.Scale
			sy := float64(y) * cfg.Scale

			t := Classify(terrainNoise.Eval2(sx, sy))
			if t == TerrainGround && cfg.ScienceThreshold > 0 {
				if math.Abs(scienceNoise.Eval2(sx, sy)) < cfg.ScienceThreshold {
					t = TerrainScience
				}
			}
			m.Set(Position{X: x, Y: y}, t)
		}
	}

	StampClearing(m, Center(cfg.Width, cfg.Height), cfg.ClearingSize)
	return m
}

// Classify maps a noise sample to a terrain kind by its absolute value.
func Classify(v float64) Terrain {
	a := math.Abs(v)
	switch {
	case a > 0 && a < 0.005:
		return TerrainEnergy
	case a >= 0.005 && a < 0.01:
		return TerrainOre
	case a < 0.25:
		return TerrainGround
	case a < 0.5:
		return TerrainWall
	default:
		return TerrainMountain
	}
}

// StampClearing overwrites a size × size square centered on center with ground.
// Cells falling outside the grid are skipped. Even sizes are rounded up to the
// next odd size so the square stays centered.
func StampClearing(m *TerrainGrid, center Position, size int) {
	if size <= 0 {
		return
	}
	half := size / 2
	for y := center.Y - half; y <= center.Y+half; y++ {
		for x := center.X - half; x <= center.X+half; x++ {
			m.Set(Position{X: x, Y: y}, TerrainGround)
		}
	}
}

// BaseFootprint returns the glyphs drawn over the base. Render-only: the
// terrain underneath stays ground.
func BaseFootprint(center Position) map[Position]rune {
	fp := make(map[Position]rune, 4)
	fp[center] = '╔'
	fp[center.Add(Position{X: 1})] = '╗'
	fp[center.Add(Position{Y: 1})] = '╚'
	fp[center.Add(Position{X: 1, Y: 1})] = '╝'
	return fp
}

// TerrainCounts returns the number of cells of each kind, indexed by Terrain.
// Cells holding an invalid value are not counted.
func TerrainCounts(m *TerrainGrid) [NumTerrains]int {
	var counts [NumTerrains]int
	m.Each(func(_ Position, t Terrain) {
		if t.Valid() {
			counts[t]++
		}
	})
	return counts
}
