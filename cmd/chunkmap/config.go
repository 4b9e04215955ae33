package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvchunk/annex"
)

// errBadConfig wraps every flag validation failure.
var errBadConfig = errors.New("chunkmap: invalid configuration")

// Config represents the command-line parameters.
type Config struct {
	Width    int
	Height   int
	Chunks   int
	Relax    int
	Policy   string
	Seed     int64
	ASCII    bool
	LogLevel string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Width:    96,
		Height:   48,
		Chunks:   24,
		Relax:    3,
		Policy:   annex.NameRandom,
		Seed:     1,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Chunks, "chunks", c.Chunks, "number of regions")
	fs.IntVar(&c.Relax, "relax", c.Relax, "Lloyd relaxation rounds before the final pass")
	fs.StringVar(&c.Policy, "policy", c.Policy, fmt.Sprintf("final-pass annexation policy %v", annex.Names()))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for placement, noise and the random policy")
	fs.BoolVar(&c.ASCII, "ascii", c.ASCII, "print region ids as a character map")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Validate checks values the flag package cannot.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", errBadConfig, c.Width, c.Height)
	case c.Chunks <= 0:
		return fmt.Errorf("%w: chunks=%d", errBadConfig, c.Chunks)
	case c.Relax < 0:
		return fmt.Errorf("%w: relax=%d", errBadConfig, c.Relax)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log-level %q", errBadConfig, c.LogLevel)
	}
	return lvl, nil
}
