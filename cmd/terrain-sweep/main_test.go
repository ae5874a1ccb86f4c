package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tileworld/internal/core"
	"tileworld/internal/world"
	"tileworld/pkg/logger"
)

func sweepConfig() world.Config {
	cfg := world.DefaultConfig()
	cfg.Width, cfg.Height = 50, 50
	cfg.TileSize = 4
	return cfg
}

func TestSweepCoversEverySeed(t *testing.T) {
	logger.Silence()
	all := sweep(sweepConfig(), 10, 6, 3)
	if len(all) != 6 {
		t.Fatalf("expected 6 results, got %d", len(all))
	}
	for i, res := range all {
		if res.seed != int64(10+i) {
			t.Fatalf("results not sorted by seed: %d at %d", res.seed, i)
		}
		if res.err != nil {
			t.Fatalf("seed %d failed: %v", res.seed, res.err)
		}
		if res.counts[core.TerrainUnset] != 0 || res.cells != 2500 {
			t.Fatalf("seed %d left cells unset", res.seed)
		}
		total := 0.0
		for _, terrain := range core.TerrainCategories {
			total += res.share(terrain)
		}
		if total < 0.999 || total > 1.001 {
			t.Fatalf("seed %d shares sum to %v", res.seed, total)
		}
	}
}

func TestReportFlagsFailures(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, []seedResult{
		{seed: 1, err: errors.New("boom")},
		{seed: 2, cells: 4, counts: map[core.Terrain]int{core.TerrainOcean: 4}, items: 3},
	})
	out := buf.String()
	if !strings.Contains(out, "FAILED: boom") {
		t.Fatalf("failure not reported:\n%s", out)
	}
	if !strings.Contains(out, "100.00%") || !strings.Contains(out, "mean") {
		t.Fatalf("summary missing:\n%s", out)
	}
}
