package neuro

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopology is returned for topologies that cannot describe a network.
	ErrInvalidTopology = errors.New("invalid network topology")
	// ErrShapeMismatch is returned when a genome's layer shapes do not match a topology.
	ErrShapeMismatch = errors.New("genome shape does not match topology")
)

// Topology fixes the layer sizes of a network for the lifetime of a run.
type Topology struct {
	Inputs       int `ini:"num_inputs"`
	Outputs      int `ini:"num_outputs"`
	HiddenLayers int `ini:"num_hidden_layers"`
	HiddenWidth  int `ini:"hidden_layer_width"`
}

// Validate checks that the topology describes a buildable network.
func (t Topology) Validate() error {
	if t.Inputs <= 0 {
		return fmt.Errorf("%w: num_inputs must be positive, got %d", ErrInvalidTopology, t.Inputs)
	}
	if t.Outputs <= 0 {
		return fmt.Errorf("%w: num_outputs must be positive, got %d", ErrInvalidTopology, t.Outputs)
	}
	if t.HiddenLayers < 0 {
		return fmt.Errorf("%w: num_hidden_layers cannot be negative, got %d", ErrInvalidTopology, t.HiddenLayers)
	}
	if t.HiddenLayers > 0 && t.HiddenWidth <= 0 {
		return fmt.Errorf("%w: hidden_layer_width must be positive when hidden layers are present, got %d", ErrInvalidTopology, t.HiddenWidth)
	}
	return nil
}

// LayerCount is the number of gene layers a genome for this topology holds.
func (t Topology) LayerCount() int {
	return t.HiddenLayers + 2
}

// LayerSize returns the neuron count of layer i (0 = inputs, LayerCount()-1 = outputs).
func (t Topology) LayerSize(i int) int {
	switch {
	case i == 0:
		return t.Inputs
	case i == t.HiddenLayers+1:
		return t.Outputs
	default:
		return t.HiddenWidth
	}
}

// FanOut returns the weight count of every gene in layer i.
// Output genes pass their signal through a single weight.
func (t Topology) FanOut(i int) int {
	if i == t.HiddenLayers+1 {
		return 1
	}
	return t.LayerSize(i + 1)
}

// String returns a compact description such as "4-1-1-4".
func (t Topology) String() string {
	s := fmt.Sprintf("%d", t.Inputs)
	for i := 0; i < t.HiddenLayers; i++ {
		s += fmt.Sprintf("-%d", t.HiddenWidth)
	}
	return s + fmt.Sprintf("-%d", t.Outputs)
}
