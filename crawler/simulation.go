package crawler

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/baldhumanity/mazecrawler/maze"
	"github.com/baldhumanity/mazecrawler/neuro"
)

// Simulation threads the winning genome of each generation into the next one.
type Simulation struct {
	RunID      uuid.UUID
	Config     *Config
	Maze       maze.Grid // Generated once per run and never mutated
	Runner     *Runner
	Reporters  *ReporterSet
	Generation int               // Generations completed so far
	Best       *GenerationResult // Winner of the latest generation
}

// NewSimulation generates the maze for a run and prepares the runner.
func NewSimulation(config *Config, rng *rand.Rand) (*Simulation, error) {
	grid, err := maze.Generate(config.Maze.MinExtent, config.Maze.MaxExtent, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze: %w", err)
	}
	return NewSimulationWithMaze(config, grid, rng)
}

// NewSimulationWithMaze prepares a run on an existing maze.
func NewSimulationWithMaze(config *Config, grid maze.Grid, rng *rand.Rand) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if grid.Height() == 0 || grid.Width() == 0 {
		return nil, fmt.Errorf("maze is empty")
	}
	return &Simulation{
		RunID:     uuid.New(),
		Config:    config,
		Maze:      grid,
		Runner:    NewRunner(config, grid, rng),
		Reporters: &ReporterSet{},
	}, nil
}

// RunGeneration runs one generation seeded from the previous winner.
func (s *Simulation) RunGeneration() (*GenerationResult, error) {
	s.Reporters.StartGeneration(s.Generation)

	result, err := s.Runner.RunGeneration(s.bestGenome())
	if err != nil {
		return nil, fmt.Errorf("generation %d failed: %w", s.Generation, err)
	}
	result.Generation = s.Generation

	s.Generation++
	s.Best = result
	s.Reporters.EndGeneration(result)
	return result, nil
}

// Run executes the given number of generations and returns the last winner.
// Zero generations is valid and returns nil.
func (s *Simulation) Run(generations int) (*GenerationResult, error) {
	for i := 0; i < generations; i++ {
		if _, err := s.RunGeneration(); err != nil {
			return s.Best, err
		}
	}
	s.Reporters.Complete(s.Best)
	return s.Best, nil
}

func (s *Simulation) bestGenome() *neuro.Genome {
	if s.Best == nil {
		return nil
	}
	return s.Best.Genome
}
