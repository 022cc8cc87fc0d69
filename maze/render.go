package maze

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI sequences used to highlight visited cells.
const (
	ColorVisited = "\033[42m"
	ColorReset   = "\033[0m"
)

// VisitedGlyph marks visited cells when colour is off.
const VisitedGlyph = "*"

// ColorEnabled reports whether f is an interactive terminal that can show ANSI colour.
func ColorEnabled(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render prints the grid with every in-bounds position of path marked as visited.
// Positions outside the grid are skipped. The grid itself is left untouched.
func Render(w io.Writer, g Grid, path []Position, color bool) error {
	visited := make(map[Position]bool, len(path))
	for _, p := range path {
		if g.Contains(p) {
			visited[p] = true
		}
	}

	var b strings.Builder
	for y, row := range g {
		for x, t := range row {
			switch {
			case !visited[Position{X: x, Y: y}]:
				b.WriteString(t.Glyph())
			case color:
				b.WriteString(ColorVisited + t.Glyph() + ColorReset)
			default:
				b.WriteString(VisitedGlyph)
			}
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to render maze: %w", err)
	}
	return nil
}
