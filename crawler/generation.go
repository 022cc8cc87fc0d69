package crawler

import (
	"fmt"
	"math/rand"

	"github.com/baldhumanity/mazecrawler/maze"
	"github.com/baldhumanity/mazecrawler/neuro"
	"github.com/baldhumanity/mazecrawler/neuro/nn"
)

// GenerationResult holds the winning trial of a generation and a summary of all its trials.
type GenerationResult struct {
	Generation  int
	Points      int
	Genome      *neuro.Genome
	Path        []maze.Position
	Termination Termination
	Control     bool    // The winner was the unmutated control trial
	Trials      int     // Trials evaluated, control included
	MeanPoints  float64 // Mean points over all trials
	StdevPoints float64 // Sample standard deviation of points over all trials
}

// Runner evaluates generations against a single maze instance.
type Runner struct {
	Config *Config
	Maze   maze.Grid // Shared instance, only ever read through clones
	Rand   *rand.Rand

	// onTrial, when set, sees every trial result in evaluation order.
	onTrial func(index int, control bool, result *TrialResult)
}

// NewRunner creates a generation runner for one maze.
func NewRunner(config *Config, grid maze.Grid, rng *rand.Rand) *Runner {
	return &Runner{
		Config: config,
		Maze:   grid,
		Rand:   rng,
	}
}

// RunGeneration evaluates PopulationSize mutated offspring of best, followed by one unmutated
// control trial, and returns the trial with the most points. Ties go to the first evaluated.
// A nil best seeds every trial, control included, with a fresh random genome.
func (r *Runner) RunGeneration(best *neuro.Genome) (*GenerationResult, error) {
	popSize := r.Config.Simulation.PopulationSize
	points := make([]int, 0, popSize+1)

	var winner *TrialResult
	winnerIsControl := false
	for i := 0; i <= popSize; i++ {
		control := i == popSize
		result, err := r.runTrial(best, !control)
		if err != nil {
			return nil, fmt.Errorf("trial %d failed: %w", i, err)
		}
		if r.onTrial != nil {
			r.onTrial(i, control, result)
		}
		points = append(points, result.Points)
		if winner == nil || result.Points > winner.Points {
			winner = result
			winnerIsControl = control
		}
	}

	mean, stdev := pointStats(points)
	return &GenerationResult{
		Points:      winner.Points,
		Genome:      winner.Genome,
		Path:        winner.Path,
		Termination: winner.Termination,
		Control:     winnerIsControl,
		Trials:      len(points),
		MeanPoints:  mean,
		StdevPoints: stdev,
	}, nil
}

// runTrial builds a network from parent (mutated when asked) and runs it on a maze clone.
func (r *Runner) runTrial(parent *neuro.Genome, mutate bool) (*TrialResult, error) {
	net, err := r.newNetwork(parent)
	if err != nil {
		return nil, err
	}
	if parent != nil && mutate {
		net.Mutate(r.Config.Mutation.Probability, r.Rand)
	}
	return RunTrial(r.Maze, net, r.Config.Simulation.StepBudget)
}

func (r *Runner) newNetwork(parent *neuro.Genome) (*nn.Network, error) {
	if parent == nil {
		return nn.New(r.Config.Network, r.Rand)
	}
	return nn.NewFromGenome(r.Config.Network, parent)
}
