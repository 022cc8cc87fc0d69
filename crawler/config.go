package crawler

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/baldhumanity/mazecrawler/neuro"
)

// Config stores the configuration parameters for a maze crawler run.
type Config struct {
	Simulation SimulationConfig
	Network    neuro.Topology
	Mutation   MutationConfig
	Maze       MazeConfig
	Report     ReportConfig
}

// SimulationConfig holds parameters of the generational loop.
type SimulationConfig struct {
	Generations    int    `ini:"generations"`
	PopulationSize int    `ini:"population_size"` // Mutated offspring per generation, the control trial comes on top
	StepBudget     int    `ini:"step_budget"`
	Seed           int64  `ini:"seed"`         // 0 seeds from the clock
	HistoryFile    string `ini:"history_file"` // Empty disables the history export
}

// MutationConfig holds parameters of the mutation operator.
type MutationConfig struct {
	Probability float64 `ini:"mutation_probability"` // Per-field chance of a perturbation
}

// MazeConfig bounds the size of the generated maze.
type MazeConfig struct {
	MinExtent int `ini:"min_extent"`
	MaxExtent int `ini:"max_extent"`
}

// ReportConfig controls what the stdout reporter prints.
type ReportConfig struct {
	RenderPath bool   `ini:"render_path"`
	Color      string `ini:"color"` // auto, always or never
	ShowGenome bool   `ini:"show_genome"`
}

// DefaultConfig returns the parameters used when no config file overrides them.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Generations:    20000,
			PopulationSize: 1000,
			StepBudget:     12,
		},
		Network: neuro.Topology{
			Inputs:       len(Directions),
			Outputs:      len(Directions),
			HiddenLayers: 2,
			HiddenWidth:  1,
		},
		Mutation: MutationConfig{Probability: 0.75},
		Maze:     MazeConfig{MinExtent: 15, MaxExtent: 50},
		Report: ReportConfig{
			RenderPath: true,
			Color:      "auto",
			ShowGenome: true,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	config, err := loadConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseConfig parses INI configuration held in memory.
func ParseConfig(data []byte) (*Config, error) {
	return loadConfig(data)
}

func loadConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()

	if err := cfg.Section("Simulation").StrictMapTo(&config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to map [Simulation] section: %w", err)
	}
	if err := cfg.Section("Network").StrictMapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}
	if err := cfg.Section("Mutation").StrictMapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Maze").StrictMapTo(&config.Maze); err != nil {
		return nil, fmt.Errorf("failed to map [Maze] section: %w", err)
	}
	if err := cfg.Section("Report").StrictMapTo(&config.Report); err != nil {
		return nil, fmt.Errorf("failed to map [Report] section: %w", err)
	}

	config.Simulation.HistoryFile = cleanIniString(config.Simulation.HistoryFile)
	config.Report.Color = strings.ToLower(cleanIniString(config.Report.Color))
	if config.Report.Color == "" {
		config.Report.Color = "auto"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every parameter range.
func (c *Config) Validate() error {
	if c.Simulation.Generations < 0 {
		return fmt.Errorf("config error: generations cannot be negative")
	}
	if c.Simulation.PopulationSize < 0 {
		return fmt.Errorf("config error: population_size cannot be negative")
	}
	if c.Simulation.StepBudget <= 0 {
		return fmt.Errorf("config error: step_budget must be positive")
	}
	if c.Mutation.Probability < 0 || c.Mutation.Probability > 1 {
		return fmt.Errorf("config error: mutation_probability must be between 0 and 1")
	}
	if c.Maze.MinExtent <= 0 {
		return fmt.Errorf("config error: min_extent must be positive")
	}
	if c.Maze.MaxExtent < c.Maze.MinExtent {
		return fmt.Errorf("config error: max_extent cannot be less than min_extent")
	}
	if err := c.Network.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	// One sensor and one action per direction.
	if c.Network.Inputs != len(Directions) {
		return fmt.Errorf("config error: num_inputs must be %d (one sensor per direction), got %d: %w", len(Directions), c.Network.Inputs, ErrTopologyMismatch)
	}
	if c.Network.Outputs != len(Directions) {
		return fmt.Errorf("config error: num_outputs must be %d (one action per direction), got %d: %w", len(Directions), c.Network.Outputs, ErrTopologyMismatch)
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.Report.Color] {
		return fmt.Errorf("config error: invalid color '%s', must be one of 'auto', 'always', 'never'", c.Report.Color)
	}
	return nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
