package crawler

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/baldhumanity/mazecrawler/maze"
)

// Reporter receives progress notifications from a Simulation.
type Reporter interface {
	StartGeneration(generation int)
	EndGeneration(result *GenerationResult)
	Complete(best *GenerationResult)
}

// ReporterSet fans notifications out to every registered reporter, in registration order.
type ReporterSet struct {
	reporters []Reporter
}

// Add registers a reporter.
func (rs *ReporterSet) Add(r Reporter) {
	rs.reporters = append(rs.reporters, r)
}

// Len returns the number of registered reporters.
func (rs *ReporterSet) Len() int {
	return len(rs.reporters)
}

func (rs *ReporterSet) StartGeneration(generation int) {
	for _, r := range rs.reporters {
		r.StartGeneration(generation)
	}
}

func (rs *ReporterSet) EndGeneration(result *GenerationResult) {
	for _, r := range rs.reporters {
		r.EndGeneration(result)
	}
}

func (rs *ReporterSet) Complete(best *GenerationResult) {
	for _, r := range rs.reporters {
		r.Complete(best)
	}
}

// StdOutReporter prints a block per generation: header, points, the best path drawn on the maze
// and a one-line summary of the generation.
type StdOutReporter struct {
	Out        io.Writer
	Maze       maze.Grid // Pristine maze the paths are drawn on
	RenderPath bool
	Color      bool
	ShowGenome bool // Dump the final genome on Complete

	generationStart time.Time
}

// NewStdOutReporter creates a reporter writing to out.
func NewStdOutReporter(out io.Writer, grid maze.Grid, report ReportConfig, color bool) *StdOutReporter {
	return &StdOutReporter{
		Out:        out,
		Maze:       grid,
		RenderPath: report.RenderPath,
		Color:      color,
		ShowGenome: report.ShowGenome,
	}
}

func (r *StdOutReporter) StartGeneration(generation int) {
	r.generationStart = time.Now()
	fmt.Fprintf(r.Out, "------ %d ------\n", generation)
}

func (r *StdOutReporter) EndGeneration(result *GenerationResult) {
	fmt.Fprintf(r.Out, "Points: %d\n", result.Points)
	if r.RenderPath {
		fmt.Fprintf(r.Out, "Best Run:\n\n")
		if err := maze.Render(r.Out, r.Maze, result.Path, r.Color); err != nil {
			fmt.Fprintf(r.Out, "Warning: failed to render best run of generation %d: %v\n", result.Generation, err)
		}
	}
	source := "offspring"
	if result.Control {
		source = "control"
	}
	fmt.Fprintf(r.Out, " Evaluated %s trials (mean %.2f, stdev %.2f), winner: %s, %s after %d moves\n",
		humanize.Comma(int64(result.Trials)), result.MeanPoints, result.StdevPoints,
		source, result.Termination, len(result.Path)-1)
	fmt.Fprintf(r.Out, "Generation %d finished in %s\n\n", result.Generation, time.Since(r.generationStart))
}

func (r *StdOutReporter) Complete(best *GenerationResult) {
	fmt.Fprintln(r.Out, "--- Simulation Complete ---")
	if best == nil {
		fmt.Fprintln(r.Out, "No generations were run.")
		return
	}
	fmt.Fprintf(r.Out, "Best genome (Generation: %d, Points: %d):\n", best.Generation, best.Points)
	if r.ShowGenome {
		fmt.Fprint(r.Out, best.Genome)
	}
}
