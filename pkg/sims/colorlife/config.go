package colorlife

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"chromalife/pkg/core"
)

// SeedPattern selects how the initial population is laid out.
type SeedPattern string

const (
	// SeedUniform populates every cell independently at InitialDensity.
	SeedUniform SeedPattern = "uniform"
	// SeedNoise modulates InitialDensity with Perlin noise, producing
	// clustered starting blobs instead of an even scatter.
	SeedNoise SeedPattern = "noise"
)

// Config controls the colorlife engine. All values are fixed at
// construction; the engine never resizes or retunes itself mid-run.
type Config struct {
	Width  int
	Height int

	// InitialDensity is the per-cell probability of starting alive.
	InitialDensity float64
	// InitialColor is shared by every cell of the starting population.
	InitialColor core.Color
	// SeedPattern chooses the initial layout (uniform or noise).
	SeedPattern SeedPattern

	// GenesisInterval spawns a fresh random cluster every N ticks.
	// 0 disables genesis entirely.
	GenesisInterval int
	// GenesisClusterSize is the edge length of the injected square.
	GenesisClusterSize int
	// GenesisDensity is the per-cell fill probability inside the square.
	GenesisDensity float64

	Seed int64

	// Workers bounds the goroutines used for the rule pass.
	// 0 means runtime.NumCPU().
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:              120,
		Height:             80,
		InitialDensity:     0.5,
		InitialColor:       core.Color{R: 255, G: 255, B: 255},
		SeedPattern:        SeedUniform,
		GenesisInterval:    300,
		GenesisClusterSize: 10,
		GenesisDensity:     0.6,
		Seed:               42,
	}
}

// Validate reports the first configuration error, or nil. A zero-area grid
// would make neighbor indexing undefined, so it is rejected here rather than
// surfacing later as a runtime fault.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("colorlife: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.InitialDensity < 0 || c.InitialDensity > 1 {
		return errors.Errorf("colorlife: initial density %v outside [0,1]", c.InitialDensity)
	}
	if c.GenesisDensity < 0 || c.GenesisDensity > 1 {
		return errors.Errorf("colorlife: genesis density %v outside [0,1]", c.GenesisDensity)
	}
	if c.GenesisInterval < 0 {
		return errors.Errorf("colorlife: genesis interval must be non-negative, got %d", c.GenesisInterval)
	}
	if c.GenesisClusterSize <= 0 {
		return errors.Errorf("colorlife: genesis cluster size must be positive, got %d", c.GenesisClusterSize)
	}
	switch c.SeedPattern {
	case SeedUniform, SeedNoise, "":
	default:
		return errors.Errorf("colorlife: unknown seed pattern %q", c.SeedPattern)
	}
	if c.Workers < 0 {
		return errors.Errorf("colorlife: workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["initial_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.InitialDensity = parsed
		}
	}
	if v, ok := cfg["genesis_interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.GenesisInterval = parsed
		}
	}
	if v, ok := cfg["genesis_cluster_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GenesisClusterSize = parsed
		}
	}
	if v, ok := cfg["genesis_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.GenesisDensity = parsed
		}
	}
	if v, ok := cfg["seed_pattern"]; ok {
		c.SeedPattern = SeedPattern(v)
	}
	if v, ok := cfg["initial_color"]; ok {
		if parsed, err := parseColorTriple(v); err == nil {
			c.InitialColor = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// parseColorTriple parses an "r,g,b" byte triple.
func parseColorTriple(s string) (core.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Color{}, errors.Errorf("colorlife: color %q is not an r,g,b triple", s)
	}
	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return core.Color{}, errors.Wrapf(err, "colorlife: color %q", s)
		}
		channels[i] = uint8(v)
	}
	return core.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}
