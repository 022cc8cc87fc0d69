package crawler

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/baldhumanity/mazecrawler/maze"
	"github.com/baldhumanity/mazecrawler/neuro"
	"github.com/baldhumanity/mazecrawler/neuro/nn"
)

// ErrTopologyMismatch is returned when a network cannot sense or act on the four directions.
var ErrTopologyMismatch = errors.New("network topology does not match the direction set")

// Termination is the state of a trial.
type Termination int

const (
	Running Termination = iota
	OutOfBounds
	StepBudgetExhausted
)

func (t Termination) String() string {
	switch t {
	case Running:
		return "running"
	case OutOfBounds:
		return "out of bounds"
	case StepBudgetExhausted:
		return "step budget exhausted"
	}
	return fmt.Sprintf("Termination(%d)", int(t))
}

// TrialResult is what remains of a trial once it has terminated.
type TrialResult struct {
	Points      int
	Genome      *neuro.Genome // Clone of the genome that drove the agent
	Path        []maze.Position
	Termination Termination
	Steps       int // Moves made
}

// Trial is one agent walking through its own copy of a maze.
type Trial struct {
	Maze           maze.Grid
	Network        *nn.Network
	Position       maze.Position
	RemainingSteps int
	Points         int
	Path           []maze.Position
	State          Termination
	Steps          int
}

// NewTrial places an agent driven by net at the centre of a private clone of grid.
func NewTrial(grid maze.Grid, net *nn.Network, stepBudget int) (*Trial, error) {
	if net.Topology.Inputs != len(Directions) || net.Topology.Outputs != len(Directions) {
		return nil, fmt.Errorf("%w: need %d inputs and %d outputs, got topology %s",
			ErrTopologyMismatch, len(Directions), len(Directions), net.Topology)
	}

	own := grid.Clone()
	start := own.Center()
	t := &Trial{
		Maze:           own,
		Network:        net,
		Position:       start,
		RemainingSteps: stepBudget,
		Path:           []maze.Position{start},
		State:          Running,
	}
	t.settle()
	return t, nil
}

// RunTrial runs a fresh trial to termination.
func RunTrial(grid maze.Grid, net *nn.Network, stepBudget int) (*TrialResult, error) {
	t, err := NewTrial(grid, net, stepBudget)
	if err != nil {
		return nil, err
	}
	return t.Run()
}

// Run steps the trial until it terminates.
func (t *Trial) Run() (*TrialResult, error) {
	for t.State == Running {
		if err := t.Step(); err != nil {
			return nil, err
		}
	}
	return t.Result(), nil
}

// Result snapshots the trial.
func (t *Trial) Result() *TrialResult {
	path := make([]maze.Position, len(t.Path))
	copy(path, t.Path)
	return &TrialResult{
		Points:      t.Points,
		Genome:      t.Network.Genome.Clone(),
		Path:        path,
		Termination: t.State,
		Steps:       t.Steps,
	}
}

// Step consumes the current tile, senses the neighbours, asks the network for a move and makes it.
// It does nothing once the trial has terminated.
func (t *Trial) Step() error {
	if t.State != Running {
		return nil
	}

	tile, _ := t.Maze.At(t.Position)
	switch tile.Kind {
	case maze.Penalty:
		t.RemainingSteps--
		t.Maze.Set(t.Position, maze.Tile{Kind: maze.Floor})
	case maze.Reward:
		t.Points += tile.Points
		t.Maze.Set(t.Position, maze.Tile{Kind: maze.Floor})
	}

	outputs, err := t.Network.FeedForward(t.sense())
	if err != nil {
		return fmt.Errorf("network evaluation failed at step %d: %w", t.Steps, err)
	}
	dir, err := DirectionFromIndex(floats.MaxIdx(outputs))
	if err != nil {
		return err
	}

	t.Position = dir.Apply(t.Position)
	t.Path = append(t.Path, t.Position)
	t.RemainingSteps--
	t.Steps++
	t.settle()
	return nil
}

// sense reads the neighbouring tiles in direction order.
func (t *Trial) sense() []float64 {
	inputs := make([]float64, len(Directions))
	for i, d := range Directions {
		inputs[i] = t.Maze.Sense(d.Apply(t.Position))
	}
	return inputs
}

// settle moves the trial into a terminal state when the budget is spent or the agent left the grid.
// An exhausted budget takes precedence over a final move off the grid.
func (t *Trial) settle() {
	switch {
	case t.RemainingSteps <= 0:
		t.State = StepBudgetExhausted
	case !t.Maze.Contains(t.Position):
		t.State = OutOfBounds
	}
}
