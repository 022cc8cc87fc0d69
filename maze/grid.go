package maze

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate: X grows to the right, Y grows downwards.
type Position struct {
	X int
	Y int
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular maze stored row by row: Grid[y][x].
type Grid [][]Tile

// NewGrid creates a width x height grid of floor tiles.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Tile, width)
	}
	return g
}

// Height is the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width is the column count of the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Center returns (round(width/2), round(height/2)).
func (g Grid) Center() Position {
	return Position{X: (g.Width() + 1) / 2, Y: (g.Height() + 1) / 2}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the tile at p. ok is false when p lies outside the grid.
func (g Grid) At(p Position) (tile Tile, ok bool) {
	if !g.Contains(p) {
		return Tile{}, false
	}
	return g[p.Y][p.X], true
}

// Set stores a tile at p; positions outside the grid are ignored.
func (g Grid) Set(p Position, t Tile) {
	if g.Contains(p) {
		g[p.Y][p.X] = t
	}
}

// Sense returns the sensor value of the cell at p, OutOfBoundsValue when there is no such cell.
func (g Grid) Sense(p Position) float64 {
	t, ok := g.At(p)
	if !ok {
		return OutOfBoundsValue
	}
	return t.Value()
}

// Clone creates a fully independent deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for y, row := range g {
		clone[y] = make([]Tile, len(row))
		copy(clone[y], row)
	}
	return clone
}

// Count returns the number of tiles of the given kind.
func (g Grid) Count(kind TileKind) int {
	n := 0
	for _, row := range g {
		for _, t := range row {
			if t.Kind == kind {
				n++
			}
		}
	}
	return n
}

// String renders the grid without any path.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, t := range row {
			b.WriteString(t.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid builds a grid from rows of glyphs ('.', '$', '1'-'9'). All rows must share a width.
func ParseGrid(rows ...string) (Grid, error) {
	g := make(Grid, len(rows))
	for y, row := range rows {
		if y > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(row), len(rows[0]))
		}
		g[y] = make([]Tile, len(row))
		for x, c := range row {
			switch {
			case c == '.':
				g[y][x] = Tile{Kind: Floor}
			case c == '$':
				g[y][x] = Tile{Kind: Penalty}
			case c >= '1' && c <= '9':
				g[y][x] = NewReward(int(c - '0'))
			default:
				return nil, fmt.Errorf("unknown tile glyph %q at (%d,%d)", c, x, y)
			}
		}
	}
	return g, nil
}
