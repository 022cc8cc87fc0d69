package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/mazecrawler/neuro"
)

var crawlerTopology = neuro.Topology{Inputs: 4, Outputs: 4, HiddenLayers: 2, HiddenWidth: 1}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func TestFeedForwardWithoutHiddenLayers(t *testing.T) {
	topology := neuro.Topology{Inputs: 2, Outputs: 2}
	genome := &neuro.Genome{Layers: [][]*neuro.Gene{
		{
			{Threshold: -10, Weights: []float64{0.5, -1}, Bias: 0},
			{Threshold: 10, Weights: []float64{2, 3}, Bias: 0}, // never fires
		},
		{
			{Threshold: -10, Weights: []float64{1}, Bias: 0.1},
			{Threshold: -10, Weights: []float64{2}, Bias: 0},
		},
	}}
	net, err := NewFromGenome(topology, genome)
	require.NoError(t, err)

	out, err := net.FeedForward([]float64{0, 1})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Input 0 fires with force sigmoid(0) = 0.5, input 1 is gated closed.
	sum0 := 0.5 * 0.5
	sum1 := -1 * 0.5
	assert.InDelta(t, sigmoid(sum0)+0.1, out[0], 1e-9)
	assert.InDelta(t, 2*sigmoid(sum1), out[1], 1e-9)
}

func TestFeedForwardWithHiddenLayers(t *testing.T) {
	topology := neuro.Topology{Inputs: 2, Outputs: 2, HiddenLayers: 1, HiddenWidth: 2}
	open := -10.0
	genome := &neuro.Genome{Layers: [][]*neuro.Gene{
		{
			{Threshold: open, Weights: []float64{1, 2}, Bias: 0},
			{Threshold: open, Weights: []float64{-1, 0.5}, Bias: 0.5},
		},
		{
			{Threshold: open, Weights: []float64{1, 0}, Bias: 0},
			{Threshold: 5, Weights: []float64{3, 3}, Bias: 0}, // never fires
		},
		{
			{Threshold: open, Weights: []float64{1}, Bias: 0},
			{Threshold: open, Weights: []float64{1}, Bias: 0},
		},
	}}
	net, err := NewFromGenome(topology, genome)
	require.NoError(t, err)

	inputs := []float64{0.3, -0.7}
	out, err := net.FeedForward(inputs)
	require.NoError(t, err)

	f0 := sigmoid(0.3)
	f1 := sigmoid(-0.7) + 0.5
	h0 := sigmoid(1*f0 + -1*f1)
	assert.InDelta(t, sigmoid(h0), out[0], 1e-9)
	assert.InDelta(t, sigmoid(0), out[1], 1e-9)
}

func TestFeedForwardInputCount(t *testing.T) {
	net, err := New(crawlerTopology, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = net.FeedForward([]float64{1, 2})
	assert.Error(t, err)

	out, err := net.FeedForward([]float64{0, -1, -2, 5})
	require.NoError(t, err)
	assert.Len(t, out, crawlerTopology.Outputs)
}

func TestFeedForwardIsPure(t *testing.T) {
	net, err := New(crawlerTopology, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	before := net.Genome.Clone()

	inputs := []float64{0, -1, 3, -2}
	first, err := net.FeedForward(inputs)
	require.NoError(t, err)
	second, err := net.FeedForward(inputs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, net.Genome)
}

func TestNewFromGenomeClones(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	parent, err := New(crawlerTopology, rng)
	require.NoError(t, err)

	child, err := NewFromGenome(crawlerTopology, parent.Genome)
	require.NoError(t, err)
	require.NotSame(t, parent.Genome, child.Genome)

	inputs := []float64{1, 0, -1, 7}
	want, err := parent.FeedForward(inputs)
	require.NoError(t, err)
	got, err := child.FeedForward(inputs)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	child.Mutate(1, rng)
	assert.NotEqual(t, parent.Genome, child.Genome)
	again, err := parent.FeedForward(inputs)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestNewFromGenomeRejectsMismatch(t *testing.T) {
	net, err := New(crawlerTopology, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	other := neuro.Topology{Inputs: 4, Outputs: 2, HiddenLayers: 2, HiddenWidth: 1}
	_, err = NewFromGenome(other, net.Genome)
	assert.ErrorIs(t, err, neuro.ErrShapeMismatch)

	_, err = NewFromGenome(crawlerTopology, nil)
	assert.ErrorIs(t, err, neuro.ErrShapeMismatch)

	_, err = New(neuro.Topology{Inputs: 4}, rand.New(rand.NewSource(4)))
	assert.ErrorIs(t, err, neuro.ErrInvalidTopology)
}
