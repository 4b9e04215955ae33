// Command chunkmap partitions a grid into terrain chunks and prints a summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/lvchunk/annex"
	"github.com/katalvlaran/lvchunk/voronoi"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := NewConfig()
	fs := flag.NewFlagSet("chunkmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	policy, err := annex.Lookup[Terrain](cfg.Policy, rand.New(rand.NewSource(cfg.Seed+3)))
	if err != nil {
		logger.Error("bad policy", "error", err)
		return 2
	}
	gen := newTerrainGen(cfg.Seed)
	ch, err := voronoi.New(cfg.Width, cfg.Height, cfg.Chunks, gen.At, policy,
		voronoi.WithSeed(cfg.Seed),
		voronoi.WithRelaxRounds(cfg.Relax),
		voronoi.WithLogger(logger),
	)
	if err != nil {
		logger.Error("invalid chunker configuration", "error", err)
		return 2
	}

	start := time.Now()
	res, err := ch.CreateChunks()
	if err != nil {
		logger.Error("chunking failed", "error", err)
		return 1
	}
	sum, err := summarize(ch.Grid(), res, time.Since(start))
	if err != nil {
		logger.Error("summary failed", "error", err)
		return 1
	}
	sum.write(stdout)

	if cfg.ASCII {
		fmt.Fprintln(stdout)
		if err := writeASCII(stdout, ch.Grid(), false); err != nil {
			logger.Warn("ascii map skipped", "error", err)
			return 0
		}
		fmt.Fprintln(stdout)
		if err := writeASCII(stdout, ch.Grid(), true); err != nil {
			logger.Warn("biome map skipped", "error", err)
		}
	}
	return 0
}
