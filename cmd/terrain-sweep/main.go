package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"tileworld/internal/core"
	"tileworld/internal/world"
	"tileworld/pkg/logger"
)

type seedResult struct {
	seed    int64
	counts  map[core.Terrain]int
	cells   int
	items   int
	elapsed time.Duration
	err     error
}

func (r seedResult) share(t core.Terrain) float64 {
	if r.cells == 0 {
		return 0
	}
	return float64(r.counts[t]) / float64(r.cells)
}

func main() {
	seeds := flag.Int("seeds", 32, "number of seeds to generate")
	first := flag.Int64("first", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	configPath := flag.String("config", "", "YAML world config")
	w := flag.Int("w", 0, "world width in blocks (0 keeps the config)")
	h := flag.Int("h", 0, "world height in blocks (0 keeps the config)")
	gradient := flag.Int("gradient", 0, "coastline band width (0 keeps the config)")
	recipe := flag.String("recipe", "", "terrain recipe (empty keeps the config)")
	tile := flag.Int("tile", 4, "tile size in pixels (0 keeps the config)")
	flag.Parse()

	logger.Init()
	base, err := world.LoadConfig(*configPath)
	if err != nil {
		logger.Log.Fatalf("config: %v", err)
	}
	base = base.Apply(map[string]string{
		"w":        fmt.Sprint(*w),
		"h":        fmt.Sprint(*h),
		"gradient": fmt.Sprint(*gradient),
		"recipe":   *recipe,
		"tile":     fmt.Sprint(*tile),
	})
	if err := base.Validate(); err != nil {
		logger.Log.Fatalf("config: %v", err)
	}
	// Per-world construction logs would drown the table.
	logger.Silence()

	fmt.Printf("Generating %d %dx%d %q worlds (gradient %d, %d workers)\n",
		*seeds, base.Width, base.Height, base.Recipe, base.GradientSize, *workers)

	start := time.Now()
	all := sweep(base, *first, *seeds, *workers)
	elapsed := time.Since(start)

	report(os.Stdout, all)
	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))

	for _, res := range all {
		if res.err != nil {
			os.Exit(1)
		}
	}
}

// sweep generates seeds [first, first+n) on a pool of workers. Each worker
// owns the worlds it builds.
func sweep(base world.Config, first int64, n, workers int) []seedResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < n; i++ {
			jobs <- first + int64(i)
		}
		close(jobs)
	}()

	var all []seedResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all
}

func runSeed(base world.Config, seed int64) seedResult {
	cfg := base
	cfg.Seed = seed
	start := time.Now()
	w, err := world.New(cfg)
	if err != nil {
		return seedResult{seed: seed, err: err, elapsed: time.Since(start)}
	}
	return seedResult{
		seed:    seed,
		counts:  w.Grid().Counts(),
		cells:   cfg.Width * cfg.Height,
		items:   len(w.Objects()),
		elapsed: time.Since(start),
	}
}

func report(out io.Writer, all []seedResult) {
	fmt.Fprintf(out, "%8s", "seed")
	for _, t := range core.TerrainCategories {
		fmt.Fprintf(out, " %9s", t)
	}
	fmt.Fprintf(out, " %7s %9s\n", "items", "time")

	avg := make(map[core.Terrain]float64)
	items, ok := 0, 0
	for _, res := range all {
		if res.err != nil {
			fmt.Fprintf(out, "%8d FAILED: %v\n", res.seed, res.err)
			continue
		}
		ok++
		items += res.items
		fmt.Fprintf(out, "%8d", res.seed)
		for _, t := range core.TerrainCategories {
			s := res.share(t)
			avg[t] += s
			fmt.Fprintf(out, " %8.2f%%", 100*s)
		}
		fmt.Fprintf(out, " %7d %9s\n", res.items, res.elapsed.Round(time.Millisecond))
	}
	if ok == 0 {
		return
	}
	fmt.Fprintf(out, "%8s", "mean")
	for _, t := range core.TerrainCategories {
		fmt.Fprintf(out, " %8.2f%%", 100*avg[t]/float64(ok))
	}
	fmt.Fprintf(out, " %7d\n", items/ok)
}
