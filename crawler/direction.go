package crawler

import (
	"fmt"

	"github.com/baldhumanity/mazecrawler/maze"
)

// Direction is one of the four moves an agent can make.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in sensor and action order.
var Directions = [...]Direction{Up, Right, Down, Left}

var directionDeltas = [...]maze.Position{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// DirectionFromIndex maps a network output index onto a direction.
func DirectionFromIndex(i int) (Direction, error) {
	if i < 0 || i >= len(Directions) {
		return 0, fmt.Errorf("output index %d has no direction", i)
	}
	return Directions[i], nil
}

// Apply returns p moved one cell in direction d.
func (d Direction) Apply(p maze.Position) maze.Position {
	delta := directionDeltas[d]
	return p.Add(delta.X, delta.Y)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
