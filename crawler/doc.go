// Package crawler evolves neural maze crawlers with a mutation-only genetic algorithm.
//
// Every generation evaluates a batch of mutated copies of the previous winner, plus one
// unmutated control, on private clones of the same maze. The agent starts in the middle of
// the maze with a small step budget, collects reward tiles, loses extra steps on penalty
// tiles and stops when the budget runs out or it walks off the grid. The trial with the most
// points wins the generation and seeds the next one.
//
// Basic usage:
//
//	config, err := crawler.LoadConfig("configs/crawler-config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	sim, err := crawler.NewSimulation(config, crawler.NewRand(config.Simulation.Seed))
//	if err != nil {
//		log.Fatalf("Error creating simulation: %v", err)
//	}
//	sim.Reporters.Add(crawler.NewStdOutReporter(os.Stdout, sim.Maze, config.Report, false))
//
//	best, err := sim.Run(config.Simulation.Generations)
//	if err != nil {
//		log.Fatalf("Error running simulation: %v", err)
//	}
//	fmt.Println("Best points:", best.Points)
package crawler
