package neuro

import (
	"fmt"
	"math/rand"
	"strings"
)

// MutationPower bounds the uniform perturbation applied to a mutated field: deltas are drawn
// from [-MutationPower, MutationPower).
const MutationPower = 0.4

// PassThroughWeight is the initial weight of every output-layer gene.
const PassThroughWeight = 1.0

// Gene holds the tunable parameters of one neuron.
type Gene struct {
	Threshold float64   // Minimum force required for the neuron to fire
	Weights   []float64 // One weight per neuron in the next layer (a single weight for outputs)
	Bias      float64   // Added to the squashed input to form the force
}

// NewGene creates a gene with the given number of weights, every field drawn uniformly from [-1, 1).
func NewGene(weights int, rng *rand.Rand) *Gene {
	g := &Gene{
		Threshold: randomUnit(rng),
		Weights:   make([]float64, weights),
		Bias:      randomUnit(rng),
	}
	for i := range g.Weights {
		g.Weights[i] = randomUnit(rng)
	}
	return g
}

// newOutputGene creates an output-layer gene: random threshold and bias, one pass-through weight.
func newOutputGene(rng *rand.Rand) *Gene {
	return &Gene{
		Threshold: randomUnit(rng),
		Weights:   []float64{PassThroughWeight},
		Bias:      randomUnit(rng),
	}
}

// Copy creates a deep copy of the Gene.
func (g *Gene) Copy() *Gene {
	weights := make([]float64, len(g.Weights))
	copy(weights, g.Weights)
	return &Gene{
		Threshold: g.Threshold,
		Weights:   weights,
		Bias:      g.Bias,
	}
}

// Mutate perturbs bias, threshold and each weight independently with the given probability.
// Values are not clamped and may drift outside [-1, 1] over generations.
func (g *Gene) Mutate(probability float64, rng *rand.Rand) {
	if rng.Float64() < probability {
		g.Bias += perturbation(rng)
	}
	if rng.Float64() < probability {
		g.Threshold += perturbation(rng)
	}
	for i := range g.Weights {
		if rng.Float64() < probability {
			g.Weights[i] += perturbation(rng)
		}
	}
}

// String returns a string representation of the Gene.
func (g *Gene) String() string {
	ws := make([]string, len(g.Weights))
	for i, w := range g.Weights {
		ws[i] = fmt.Sprintf("%.3f", w)
	}
	return fmt.Sprintf("Gene(Threshold: %.3f, Bias: %.3f, Weights: [%s])",
		g.Threshold, g.Bias, strings.Join(ws, " "))
}

func randomUnit(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

func perturbation(rng *rand.Rand) float64 {
	return rng.Float64()*2*MutationPower - MutationPower
}
