package crawler

import (
	"bytes"
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/mazecrawler/maze"
)

type recordingReporter struct {
	started  []int
	results  []*GenerationResult
	complete int
	best     *GenerationResult
}

func (r *recordingReporter) StartGeneration(g int) { r.started = append(r.started, g) }

func (r *recordingReporter) EndGeneration(res *GenerationResult) {
	r.results = append(r.results, res)
}

func (r *recordingReporter) Complete(best *GenerationResult) {
	r.complete++
	r.best = best
}

func TestSimulationRun(t *testing.T) {
	config := testConfig(15)
	sim, err := NewSimulation(config, rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	rec := &recordingReporter{}
	sim.Reporters.Add(rec)

	best, err := sim.Run(6)
	require.NoError(t, err)
	require.NotNil(t, best)

	assert.Equal(t, 6, sim.Generation)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, rec.started)
	require.Len(t, rec.results, 6)
	assert.Equal(t, 1, rec.complete)
	assert.Same(t, best, rec.best)
	assert.Same(t, best, sim.Best)

	// The unmutated control replays the previous winner, so points never drop on the same maze.
	for i, res := range rec.results {
		assert.Equal(t, i, res.Generation)
		if i > 0 {
			assert.GreaterOrEqual(t, res.Points, rec.results[i-1].Points)
		}
	}
}

func TestSimulationZeroGenerations(t *testing.T) {
	sim, err := NewSimulation(testConfig(5), rand.New(rand.NewSource(22)))
	require.NoError(t, err)
	rec := &recordingReporter{}
	sim.Reporters.Add(rec)

	best, err := sim.Run(0)
	require.NoError(t, err)
	assert.Nil(t, best)
	assert.Empty(t, rec.started)
	assert.Equal(t, 1, rec.complete)
	assert.Nil(t, rec.best)
}

func TestSimulationKeepsMazePristine(t *testing.T) {
	grid, err := maze.Generate(15, 15, rand.New(rand.NewSource(23)))
	require.NoError(t, err)
	pristine := grid.Clone()

	sim, err := NewSimulationWithMaze(testConfig(10), grid, rand.New(rand.NewSource(24)))
	require.NoError(t, err)
	_, err = sim.Run(3)
	require.NoError(t, err)
	assert.Equal(t, pristine, sim.Maze)
}

func TestNewSimulationRejectsBadInput(t *testing.T) {
	config := testConfig(5)
	config.Network.Outputs = 2
	_, err := NewSimulation(config, rand.New(rand.NewSource(25)))
	assert.ErrorIs(t, err, ErrTopologyMismatch)

	_, err = NewSimulationWithMaze(testConfig(5), maze.Grid{}, rand.New(rand.NewSource(25)))
	assert.Error(t, err)

	config = testConfig(5)
	config.Maze.MinExtent = 0
	_, err = NewSimulation(config, rand.New(rand.NewSource(25)))
	assert.Error(t, err)
}

func TestStdOutReporter(t *testing.T) {
	grid, err := maze.ParseGrid(
		"....",
		".$3.",
		"....",
	)
	require.NoError(t, err)
	var buf bytes.Buffer
	config := DefaultConfig()
	r := NewStdOutReporter(&buf, grid, config.Report, false)

	result := &GenerationResult{
		Generation:  7,
		Points:      3,
		Genome:      fixedGenome(Up),
		Path:        []maze.Position{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}},
		Termination: StepBudgetExhausted,
		Trials:      1001,
		MeanPoints:  1.5,
	}
	r.StartGeneration(7)
	r.EndGeneration(result)
	r.Complete(result)

	out := buf.String()
	assert.Contains(t, out, "------ 7 ------\n")
	assert.Contains(t, out, "Points: 3\nBest Run:\n\n")
	assert.Contains(t, out, "..*.\n.$*.\n..*.\n")
	assert.Contains(t, out, "Evaluated 1,001 trials (mean 1.50, stdev 0.00), winner: offspring, step budget exhausted after 2 moves")
	assert.Contains(t, out, "Generation 7 finished in ")
	assert.Contains(t, out, "Best genome (Generation: 7, Points: 3):\nLayer 0:\n")
	assert.Equal(t, 4, strings.Count(out, "Layer "))
}

func TestStdOutReporterWithoutGenerations(t *testing.T) {
	var buf bytes.Buffer
	r := &StdOutReporter{Out: &buf}
	r.Complete(nil)
	assert.Equal(t, "--- Simulation Complete ---\nNo generations were run.\n", buf.String())
}

func TestHistoryRoundTrip(t *testing.T) {
	sim, err := NewSimulation(testConfig(10), rand.New(rand.NewSource(26)))
	require.NoError(t, err)
	history := NewHistoryReporter(sim)
	sim.Reporters.Add(history)

	_, err = sim.Run(4)
	require.NoError(t, err)
	require.True(t, history.History.Finished)
	require.Len(t, history.History.Records, 4)
	assert.Equal(t, sim.RunID.String(), history.History.RunID)

	path := filepath.Join(t.TempDir(), "history.gz")
	require.NoError(t, SaveHistory(history.History, path))
	loaded, err := LoadHistory(path)
	require.NoError(t, err)

	assert.Equal(t, history.History.RunID, loaded.RunID)
	assert.Equal(t, history.History.Maze, loaded.Maze)
	assert.Equal(t, history.History.Records, loaded.Records)
	assert.True(t, loaded.Started.Equal(history.History.Started))

	best, ok := loaded.Best()
	require.True(t, ok)
	assert.Equal(t, sim.Best.Points, best.Points)

	_, err = LoadHistory(filepath.Join(t.TempDir(), "missing.gz"))
	assert.Error(t, err)
}

// glyphRejectingWriter fails every write that contains the visited-cell glyph.
type glyphRejectingWriter struct {
	buf bytes.Buffer
}

func (w *glyphRejectingWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte(maze.VisitedGlyph)) {
		return 0, errors.New("device full")
	}
	return w.buf.Write(p)
}

func TestStdOutReporterReportsRenderFailure(t *testing.T) {
	w := &glyphRejectingWriter{}
	r := NewStdOutReporter(w, maze.NewGrid(3, 3), DefaultConfig().Report, false)

	r.StartGeneration(2)
	r.EndGeneration(&GenerationResult{
		Generation:  2,
		Path:        []maze.Position{{X: 2, Y: 2}, {X: 2, Y: 1}},
		Termination: OutOfBounds,
		Trials:      1,
	})

	out := w.buf.String()
	assert.Contains(t, out, "Warning: failed to render best run of generation 2: failed to render maze: device full\n")
	assert.Contains(t, out, "Generation 2 finished in ")
}
