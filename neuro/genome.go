package neuro

import (
	"fmt"
	"math/rand"
	"strings"
)

// Genome is the full parameter set of one network: one gene layer per network layer,
// in evaluation order (inputs, each hidden layer, outputs).
type Genome struct {
	Layers [][]*Gene
}

// NewGenome creates a random genome shaped for the topology.
func NewGenome(topology Topology, rng *rand.Rand) (*Genome, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}

	g := &Genome{Layers: make([][]*Gene, topology.LayerCount())}
	outputLayer := topology.LayerCount() - 1
	for i := range g.Layers {
		layer := make([]*Gene, topology.LayerSize(i))
		for j := range layer {
			if i == outputLayer {
				layer[j] = newOutputGene(rng)
			} else {
				layer[j] = NewGene(topology.FanOut(i), rng)
			}
		}
		g.Layers[i] = layer
	}
	return g, nil
}

// Clone creates a fully independent deep copy of the Genome.
func (g *Genome) Clone() *Genome {
	clone := &Genome{Layers: make([][]*Gene, len(g.Layers))}
	for i, layer := range g.Layers {
		clone.Layers[i] = make([]*Gene, len(layer))
		for j, gene := range layer {
			clone.Layers[i][j] = gene.Copy()
		}
	}
	return clone
}

// Mutate visits every gene of every layer and perturbs its fields in place.
func (g *Genome) Mutate(probability float64, rng *rand.Rand) {
	for _, layer := range g.Layers {
		for _, gene := range layer {
			gene.Mutate(probability, rng)
		}
	}
}

// Validate checks the genome's layer shapes against a topology.
func (g *Genome) Validate(topology Topology) error {
	if len(g.Layers) != topology.LayerCount() {
		return fmt.Errorf("%w: expected %d layers, got %d", ErrShapeMismatch, topology.LayerCount(), len(g.Layers))
	}
	for i, layer := range g.Layers {
		if len(layer) != topology.LayerSize(i) {
			return fmt.Errorf("%w: layer %d expected %d genes, got %d", ErrShapeMismatch, i, topology.LayerSize(i), len(layer))
		}
		fanOut := topology.FanOut(i)
		for j, gene := range layer {
			if gene == nil {
				return fmt.Errorf("%w: layer %d gene %d is missing", ErrShapeMismatch, i, j)
			}
			if len(gene.Weights) != fanOut {
				return fmt.Errorf("%w: layer %d gene %d expected %d weights, got %d", ErrShapeMismatch, i, j, fanOut, len(gene.Weights))
			}
		}
	}
	return nil
}

// String returns a multi-line dump of every gene, one layer per block.
func (g *Genome) String() string {
	var b strings.Builder
	for i, layer := range g.Layers {
		fmt.Fprintf(&b, "Layer %d:\n", i)
		for _, gene := range layer {
			fmt.Fprintf(&b, "  %s\n", gene)
		}
	}
	return b.String()
}
