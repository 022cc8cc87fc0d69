/*
Package maze provides the grid the crawlers move through.

A maze is a rectangular Grid of floor, penalty and reward tiles. The package generates random
mazes, clones them for independent trials, converts tiles into sensor values and prints a
maze with an agent's path marked on it.
*/
package maze

import (
	"fmt"
	"math"
	"math/rand"
)

// tileKinds is the pool a generated tile is drawn from.
var tileKinds = [...]TileKind{Floor, Penalty, Reward}

// Generate creates a random maze whose width and height are each drawn from [minExtent, maxExtent].
// The tile kind is picked by rounding a uniform draw over the pool, so penalty tiles are twice as
// common as floor or reward tiles.
func Generate(minExtent, maxExtent int, rng *rand.Rand) (Grid, error) {
	if minExtent <= 0 {
		return nil, fmt.Errorf("min extent must be positive, got %d", minExtent)
	}
	if maxExtent < minExtent {
		return nil, fmt.Errorf("max extent (%d) cannot be less than min extent (%d)", maxExtent, minExtent)
	}

	width := roundedBetween(minExtent, maxExtent, rng)
	height := roundedBetween(minExtent, maxExtent, rng)

	g := NewGrid(width, height)
	for y := range g {
		for x := range g[y] {
			idx := int(math.Round(rng.Float64() * float64(len(tileKinds)-1)))
			switch tileKinds[idx] {
			case Reward:
				g[y][x] = NewReward(roundedBetween(MinReward, MaxReward, rng))
			default:
				g[y][x] = Tile{Kind: tileKinds[idx]}
			}
		}
	}
	return g, nil
}

func roundedBetween(lo, hi int, rng *rand.Rand) int {
	return int(math.Round(rng.Float64()*float64(hi-lo) + float64(lo)))
}
