package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDimensionMismatch is returned when two grids that must share dimensions do not.
var ErrDimensionMismatch = errors.New("grid dimension mismatch")

// Grid is a bounded, row-major 2D array of cells.
// Out-of-range reads return an absent result and out-of-range writes are ignored.
type Grid[T comparable] struct {
	Width  int
	Height int
	cells  []T
}

// TerrainGrid is the grid type shared by the base and every agent.
type TerrainGrid = Grid[Terrain]

// NewGrid creates a width × height grid with every cell set to fill.
func NewGrid[T comparable](width, height int, fill T) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid[T]{
		Width:  width,
		Height: height,
		cells:  make([]T, width*height),
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// NewTerrainGrid creates a terrain grid filled with fill.
func NewTerrainGrid(width, height int, fill Terrain) *TerrainGrid {
	return NewGrid(width, height, fill)
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the cell at (x, y). The second result is false when out of range.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.Width+x], true
}

// At returns the cell at p.
func (g *Grid[T]) At(p Position) (T, bool) {
	return g.Get(p.X, p.Y)
}

// Set writes v at p. Returns false (and writes nothing) when p is out of range.
func (g *Grid[T]) Set(p Position, v T) bool {
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	g.cells[p.Y*g.Width+p.X] = v
	return true
}

// SameSize reports whether g and other have identical dimensions.
func (g *Grid[T]) SameSize(other *Grid[T]) bool {
	return other != nil && g.Width == other.Width && g.Height == other.Height
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		Width:  g.Width,
		Height: g.Height,
		cells:  make([]T, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites g in place with the contents of src.
func (g *Grid[T]) CopyFrom(src *Grid[T]) error {
	if !g.SameSize(src) {
		return fmt.Errorf("copy %s into %s: %w", src.sizeString(), g.sizeString(), ErrDimensionMismatch)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether g and other have the same dimensions and cells.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if !g.SameSize(other) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Position, v T)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(Position{X: x, Y: y}, g.cells[y*g.Width+x])
		}
	}
}

// Count returns the number of cells for which match returns true.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if match(v) {
			n++
		}
	}
	return n
}

func (g *Grid[T]) sizeString() string {
	if g == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// ParseGrid builds a terrain grid from rows of glyphs. All rows must have the
// same length; unknown glyphs are an error.
func ParseGrid(rows []string) (*TerrainGrid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len([]rune(rows[0]))
	}
	g := NewTerrainGrid(width, height, TerrainVoid)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			t, ok := ParseGlyph(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", y, x, r)
			}
			g.Set(Pos(x, y), t)
		}
	}
	return g, nil
}

// Rows renders the grid as one glyph string per row, the inverse of ParseGrid.
func Rows(g *TerrainGrid) []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			t, _ := g.Get(x, y)
			b.WriteRune(t.Glyph())
		}
		rows[y] = b.String()
	}
	return rows
}
