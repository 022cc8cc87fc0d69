package crawler

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// NewRand returns a random source for the given seed; 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// pointStats returns the mean and sample standard deviation of trial points.
// The deviation is 0 for fewer than two values.
func pointStats(points []int) (mean, stdev float64) {
	if len(points) == 0 {
		return 0, 0
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = float64(p)
	}
	if len(values) < 2 {
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}
