package app

import (
	"github.com/integrii/flaggy"
)

// Renderer selection values accepted by --renderer.
const (
	RendererWindow = "window"
	RendererTerm   = "term"
)

// Options represents the command-line parameters for the application.
type Options struct {
	Renderer string

	Width  int
	Height int
	Scale  int
	FPS    int
	Seed   int64

	CellColor string
	BgColor   string

	InitialDensity     float64
	GenesisInterval    int
	GenesisClusterSize int
	GenesisDensity     float64
	SeedPattern        string

	Workers int
}

// NewOptions returns an Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{
		Renderer:           RendererWindow,
		Width:              120,
		Height:             80,
		Scale:              8,
		FPS:                60,
		Seed:               42,
		CellColor:          "white",
		BgColor:            "black",
		InitialDensity:     0.5,
		GenesisInterval:    300,
		GenesisClusterSize: 10,
		GenesisDensity:     0.6,
		SeedPattern:        "uniform",
	}
}

// RegisterFlags attaches every option to the default flaggy parser.
func (o *Options) RegisterFlags() {
	flaggy.String(&o.Renderer, "r", "renderer", "rendering backend [window|term]")
	flaggy.Int(&o.Width, "x", "width", "width of the game grid")
	flaggy.Int(&o.Height, "y", "height", "height of the game grid")
	flaggy.Int(&o.Scale, "", "scale", "pixel scale of each cell")
	flaggy.Int(&o.FPS, "", "fps", "target generations per second")
	flaggy.Int64(&o.Seed, "", "seed", "seed for deterministic runs")
	flaggy.String(&o.CellColor, "", "cell-color", "initial cell color, a name or \"r,g,b\"")
	flaggy.String(&o.BgColor, "", "bg-color", "background color, a name or \"r,g,b\"")
	flaggy.Float64(&o.InitialDensity, "", "initial-density", "initial density of living cells (0.0 to 1.0)")
	flaggy.Int(&o.GenesisInterval, "", "genesis-interval", "spawn a random life cluster every N ticks, 0 disables")
	flaggy.Int(&o.GenesisClusterSize, "", "genesis-cluster-size", "edge length of the spawned cluster square")
	flaggy.Float64(&o.GenesisDensity, "", "genesis-density", "density of life within the spawned cluster (0.0 to 1.0)")
	flaggy.String(&o.SeedPattern, "", "seed-pattern", "initial layout [uniform|noise]")
	flaggy.Int(&o.Workers, "", "workers", "worker goroutines for the update pass, 0 = NumCPU")
}
