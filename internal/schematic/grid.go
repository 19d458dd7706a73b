// Package schematic scans an engine schematic: a rectangular character
// grid of empties, symbols and multi-digit numbers.
package schematic

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf8"

	"svw.info/aoc2023/internal/parse"
)

// Kind classifies a grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Symbol
	Digit
)

// Cell is one classified grid position.
//
// For Digit cells Value holds the single digit until the run-merge pass
// has run, after which it holds the value of the whole number, Run its
// width and ID the identity shared by every cell of that run.
type Cell struct {
	Kind   Kind
	Symbol rune
	Value  int
	Run    int
	ID     int
}

// Key is the comparable identity of a cell. Value and Run are not part of
// it, so two digits of the same number share a key while two distinct
// numbers with equal values do not.
type Key struct {
	Kind   Kind
	Symbol rune
	ID     int
}

// Key returns the cell's key.
func (c Cell) Key() Key {
	return Key{Kind: c.Kind, Symbol: c.Symbol, ID: c.ID}
}

// Classify maps an input character to its unmerged cell.
func Classify(r rune) Cell {
	switch {
	case r == '.':
		return Cell{Kind: Empty}
	case r >= '0' && r <= '9':
		return Cell{Kind: Digit, Value: int(r - '0')}
	default:
		return Cell{Kind: Symbol, Symbol: r}
	}
}

// Number is a merged horizontal digit run.
type Number struct {
	ID    int
	Value int
	X, Y  int
	Len   int
}

// Grid is an immutable width x height schematic with merged numbers.
type Grid struct {
	width, height int
	cells         []Cell
	numbers       []Number
}

var errEmpty = errors.New("empty schematic")

// Parse classifies every character of input and merges digit runs.
// Rows must all share the first row's width.
func Parse(input []byte) (*Grid, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return nil, errEmpty
	}
	g := &Grid{
		width:  utf8.RuneCountInString(lines[0].Text),
		height: len(lines),
	}
	g.cells = make([]Cell, 0, g.width*g.height)
	for _, l := range lines {
		if w := utf8.RuneCountInString(l.Text); w != g.width {
			return nil, parse.Errorf(l.No, "ragged row: width %d, want %d", w, g.width)
		}
		for _, r := range l.Text {
			g.cells = append(g.cells, Classify(r))
		}
	}
	if err := g.mergeRuns(lines); err != nil {
		return nil, err
	}
	return g, nil
}

// mergeRuns rewrites every horizontal digit run with its full value, width
// and a fresh ID. Runs never wrap across rows. A run too large for an int
// is an error naming its line and column.
func (g *Grid) mergeRuns(lines []parse.Line) error {
	id := 0
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x := 0; x < g.width; {
			if row[x].Kind != Digit {
				x++
				continue
			}
			value, run := 0, 0
			for x+run < g.width && row[x+run].Kind == Digit {
				d := row[x+run].Value
				if value > (math.MaxInt-d)/10 {
					return parse.At(lines[y].No, x+1, "number too large", strconv.ErrRange)
				}
				value = value*10 + d
				run++
			}
			for dx := 0; dx < run; dx++ {
				row[x+dx] = Cell{Kind: Digit, Value: value, Run: run, ID: id}
			}
			g.numbers = append(g.numbers, Number{ID: id, Value: value, X: x, Y: y, Len: run})
			id++
			x += run
		}
	}
	return nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the cell at column x, row y. It panics when out of range.
func (g *Grid) At(x, y int) Cell { return g.cells[y*g.width+x] }

// Numbers returns the merged numbers in row-major order.
func (g *Grid) Numbers() []Number { return g.numbers }

// window calls fn for every in-bounds cell of rows [y0, y1] x cols [x0, x1].
// It stops early when fn returns false.
func (g *Grid) window(x0, y0, x1, y1 int, fn func(Cell) bool) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.width-1), min(y1, g.height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !fn(g.At(x, y)) {
				return
			}
		}
	}
}
