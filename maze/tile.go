package maze

import "fmt"

// Sensor values for tiles that carry no points.
const (
	FloorValue       = 0.0
	PenaltyValue     = -1.0
	OutOfBoundsValue = -2.0
)

// Reward points are drawn from [MinReward, MaxReward].
const (
	MinReward = 1
	MaxReward = 9
)

// TileKind enumerates what can be stored in a grid cell.
type TileKind uint8

const (
	Floor   TileKind = iota // Neutral
	Penalty                 // Costs one step when stepped on
	Reward                  // Grants Points when stepped on
)

// Tile is one cell of the grid. Points is only meaningful for Reward tiles.
type Tile struct {
	Kind   TileKind
	Points int
}

// NewReward creates a reward tile worth the given points.
func NewReward(points int) Tile {
	return Tile{Kind: Reward, Points: points}
}

// Value converts the tile into the number an agent senses.
func (t Tile) Value() float64 {
	switch t.Kind {
	case Penalty:
		return PenaltyValue
	case Reward:
		return float64(t.Points)
	default:
		return FloorValue
	}
}

// Glyph is the single character used when the tile is printed.
func (t Tile) Glyph() string {
	switch t.Kind {
	case Penalty:
		return "$"
	case Reward:
		return fmt.Sprintf("%d", t.Points)
	default:
		return "."
	}
}
