// Command genesis-sweep runs the colorlife engine headless across a grid of
// genesis parameters and reports which settings keep the board alive and
// colorful. Useful for tuning defaults without staring at a window.
package main

import (
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"github.com/integrii/flaggy"

	"chromalife/pkg/core"
	"chromalife/pkg/sims/colorlife"
)

type paramSet struct {
	interval int
	cluster  int
	density  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("interval=%d cluster=%d density=%.2f", p.interval, p.cluster, p.density)
}

type scenarioResult struct {
	params paramSet

	finalPopulation int
	peakPopulation  int
	finalColors     int
}

func main() {
	steps := 600
	width := 120
	height := 80
	seed := int64(42)
	workers := runtime.NumCPU()

	flaggy.SetName("genesis-sweep")
	flaggy.SetDescription("sweep genesis parameters on a headless colorlife board")
	flaggy.Int(&steps, "", "steps", "ticks to simulate per scenario")
	flaggy.Int(&width, "x", "width", "board width")
	flaggy.Int(&height, "y", "height", "board height")
	flaggy.Int64(&seed, "", "seed", "seed shared by every scenario")
	flaggy.Int(&workers, "", "workers", "number of worker goroutines")
	flaggy.Parse()

	intervalOptions := []int{0, 100, 300, 600}
	clusterOptions := []int{5, 10, 20}
	densityOptions := []float64{0.3, 0.6, 0.9}

	var sets []paramSet
	for _, interval := range intervalOptions {
		for _, cluster := range clusterOptions {
			for _, density := range densityOptions {
				sets = append(sets, paramSet{interval: interval, cluster: cluster, density: density})
			}
		}
	}

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- runScenario(p, width, height, seed, steps)
			}
		}()
	}
	go func() {
		for _, p := range sets {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []scenarioResult
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].finalColors != all[j].finalColors {
			return all[i].finalColors > all[j].finalColors
		}
		return all[i].finalPopulation > all[j].finalPopulation
	})

	fmt.Printf("%d scenarios, %d ticks each on %dx%d (seed %d)\n\n", len(all), steps, width, height, seed)
	for _, r := range all {
		fmt.Printf("%-40s final=%6d peak=%6d colors=%4d\n",
			r.params, r.finalPopulation, r.peakPopulation, r.finalColors)
	}
}

func runScenario(p paramSet, width, height int, seed int64, steps int) scenarioResult {
	cfg := colorlife.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	cfg.GenesisInterval = p.interval
	cfg.GenesisClusterSize = p.cluster
	cfg.GenesisDensity = p.density
	// Scenarios run concurrently; keep each engine single-threaded.
	cfg.Workers = 1

	engine, err := colorlife.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("scenario %s: %v", p, err)
	}

	result := scenarioResult{params: p}
	for i := 0; i < steps; i++ {
		engine.Step()
		if pop := core.Population(engine.Cells()); pop > result.peakPopulation {
			result.peakPopulation = pop
		}
	}
	result.finalPopulation = core.Population(engine.Cells())
	result.finalColors = core.ColorCount(engine.Cells())
	return result
}
