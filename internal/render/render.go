// Package render draws plain-text frames of the colony: the map with agents
// and the base overlaid, plus a status panel to the right.
package render

import (
	"fmt"
	"strings"

	"github.com/talgya/rover-colony/internal/agents"
	"github.com/talgya/rover-colony/internal/colony"
	"github.com/talgya/rover-colony/internal/world"
)

// ClearScreen moves the cursor home and clears the terminal.
const ClearScreen = "\x1b[2J\x1b[1;1H"

// Frame renders view with agents drawn over the base footprint, which is
// drawn over terrain. Row 0 carries the base counters and the following rows
// list one agent each.
func Frame(view *world.TerrainGrid, population []*agents.Agent, base *colony.Base) string {
	markers := make(map[world.Position]rune, len(population))
	// First agent listed wins a shared cell.
	for i := len(population) - 1; i >= 0; i-- {
		a := population[i]
		markers[a.Position] = a.Marker().Glyph()
	}
	footprint := world.BaseFootprint(base.Position())
	c := base.Counters()

	var b strings.Builder
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			p := world.Position{X: x, Y: y}
			if r, ok := markers[p]; ok {
				b.WriteRune(r)
				continue
			}
			if r, ok := footprint[p]; ok {
				b.WriteRune(r)
				continue
			}
			t, _ := view.Get(x, y)
			b.WriteRune(t.Glyph())
		}

		switch {
		case y == 0:
			fmt.Fprintf(&b, "   | Energy: %d, Ore: %d, Science: %d, Rovers: %d",
				c.Energy, c.Ore, c.Science, len(population))
		case y <= len(population):
			a := population[y-1]
			fmt.Fprintf(&b, "   | %s: %s, Position: (x: %d, y: %d), Cargo: %s",
				a.Role, a.Name, a.Position.X, a.Position.Y, cargoName(a.Cargo))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cargoName(t world.Terrain) string {
	if t == world.TerrainVoid {
		return "-"
	}
	return t.Name()
}
