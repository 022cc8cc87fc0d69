package nn

import (
	"fmt"
	"math/rand"

	"github.com/baldhumanity/mazecrawler/neuro"
)

// Network is a layered feedforward controller. It owns its Genome exclusively;
// genomes only ever enter or leave a Network as deep copies.
type Network struct {
	Topology neuro.Topology
	Genome   *neuro.Genome
}

// New builds a network with a fresh random genome for the topology.
func New(topology neuro.Topology, rng *rand.Rand) (*Network, error) {
	genome, err := neuro.NewGenome(topology, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create genome for topology %s: %w", topology, err)
	}
	return &Network{Topology: topology, Genome: genome}, nil
}

// NewFromGenome builds a network around a clone of an existing genome.
// The genome's layer shapes must match the topology.
func NewFromGenome(topology neuro.Topology, genome *neuro.Genome) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	if genome == nil {
		return nil, fmt.Errorf("%w: genome is nil", neuro.ErrShapeMismatch)
	}
	if err := genome.Validate(topology); err != nil {
		return nil, err
	}
	return &Network{Topology: topology, Genome: genome.Clone()}, nil
}

// Mutate perturbs the network's own genome in place.
func (net *Network) Mutate(probability float64, rng *rand.Rand) {
	net.Genome.Mutate(probability, rng)
}

// FeedForward computes one output per output neuron for the given inputs.
// The input slice must match the number of input neurons.
func (net *Network) FeedForward(inputs []float64) ([]float64, error) {
	if len(inputs) != net.Topology.Inputs {
		return nil, fmt.Errorf("mismatch between input count (%d) and network input neurons (%d)", len(inputs), net.Topology.Inputs)
	}
	layers := net.Genome.Layers

	// Every neuron of a layer emits a vector with one component per neuron of the next layer.
	signals := make([][]float64, len(layers[0]))
	for i, gene := range layers[0] {
		signals[i] = neuro.Process(inputs[i], gene)
	}

	for _, layer := range layers[1:] {
		next := make([][]float64, len(layer))
		for j, gene := range layer {
			next[j] = neuro.Process(columnSum(signals, j), gene)
		}
		signals = next
	}

	// The output layer emitted single-element vectors; flatten them.
	outputs := make([]float64, len(signals))
	for k, s := range signals {
		outputs[k] = s[0]
	}
	return outputs, nil
}

// columnSum adds component j of every vector.
func columnSum(vectors [][]float64, j int) float64 {
	sum := 0.0
	for _, v := range vectors {
		sum += v[j]
	}
	return sum
}
