package schematic

import "svw.info/aoc2023/internal/mathx"

// HasAdjacentSymbol reports whether any symbol touches n, diagonals
// included.
func (g *Grid) HasAdjacentSymbol(n Number) bool {
	found := false
	g.window(n.X-1, n.Y-1, n.X+n.Len, n.Y+1, func(c Cell) bool {
		found = c.Kind == Symbol
		return !found
	})
	return found
}

// PartNumbers returns every number with at least one adjacent symbol.
func (g *Grid) PartNumbers() []Number {
	var out []Number
	for _, n := range g.numbers {
		if g.HasAdjacentSymbol(n) {
			out = append(out, n)
		}
	}
	return out
}

// PartSum is the sum of all part number values.
func (g *Grid) PartSum() int {
	parts := g.PartNumbers()
	values := make([]int, len(parts))
	for i, n := range parts {
		values[i] = n.Value
	}
	return mathx.Sum(values...)
}

// Gear is a '*' symbol touching exactly two distinct numbers.
type Gear struct {
	X, Y  int
	Parts [2]int
}

// Ratio is the product of the gear's two part values.
func (g Gear) Ratio() int { return mathx.Product(g.Parts[0], g.Parts[1]) }

// AdjacentNumbers returns the distinct numbers touching the 3x3 window
// centred on (x, y), deduplicated by identity, in the order first seen.
func (g *Grid) AdjacentNumbers(x, y int) []Cell {
	seen := make(map[Key]bool)
	var out []Cell
	g.window(x-1, y-1, x+1, y+1, func(c Cell) bool {
		if c.Kind == Digit && !seen[c.Key()] {
			seen[c.Key()] = true
			out = append(out, c)
		}
		return true
	})
	return out
}

// Gears returns every gear in row-major order.
func (g *Grid) Gears() []Gear {
	var out []Gear
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if c := g.At(x, y); c.Kind != Symbol || c.Symbol != '*' {
				continue
			}
			adj := g.AdjacentNumbers(x, y)
			if len(adj) != 2 {
				continue
			}
			out = append(out, Gear{X: x, Y: y, Parts: [2]int{adj[0].Value, adj[1].Value}})
		}
	}
	return out
}

// GearRatioSum is the sum of all gear ratios.
func (g *Grid) GearRatioSum() int {
	total := 0
	for _, gr := range g.Gears() {
		total += gr.Ratio()
	}
	return total
}
