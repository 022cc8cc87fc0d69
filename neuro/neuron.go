package neuro

import "math"

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Process runs one neuron: the force sigmoid(input)+bias is compared once against the
// threshold. An open gate scales every weight by the force; a closed gate yields zeros.
// The result always has len(gene.Weights) elements.
func Process(input float64, gene *Gene) []float64 {
	out := make([]float64, len(gene.Weights))
	force := Sigmoid(input) + gene.Bias
	if force < gene.Threshold {
		return out
	}
	for i, w := range gene.Weights {
		out[i] = w * force
	}
	return out
}
