package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/integrii/flaggy"

	"chromalife/internal/app"
	"chromalife/internal/term"
	"chromalife/pkg/core"
	_ "chromalife/pkg/sims/colorlife"
)

func main() {
	opts := app.NewOptions()

	flaggy.SetName("chromalife")
	flaggy.SetDescription("Conway's Game of Life with color genetics and periodic genesis events")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	opts.RegisterFlags()
	flaggy.Parse()

	cellColor, err := app.ParseColor(opts.CellColor)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if _, err := app.ParseColor(opts.BgColor); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	factory, ok := core.Sims()["colorlife"]
	if !ok {
		log.Fatal("colorlife simulation not registered")
	}
	sim, err := factory(map[string]string{
		"w":                    strconv.Itoa(opts.Width),
		"h":                    strconv.Itoa(opts.Height),
		"seed":                 strconv.FormatInt(opts.Seed, 10),
		"initial_density":      fmt.Sprintf("%g", opts.InitialDensity),
		"initial_color":        fmt.Sprintf("%d,%d,%d", cellColor.R, cellColor.G, cellColor.B),
		"seed_pattern":         opts.SeedPattern,
		"genesis_interval":     strconv.Itoa(opts.GenesisInterval),
		"genesis_cluster_size": strconv.Itoa(opts.GenesisClusterSize),
		"genesis_density":      fmt.Sprintf("%g", opts.GenesisDensity),
		"workers":              strconv.Itoa(opts.Workers),
	})
	if err != nil {
		log.Fatal(err)
	}

	switch opts.Renderer {
	case app.RendererTerm:
		err = term.Run(sim, opts)
	case app.RendererWindow:
		err = app.Run(sim, opts)
	default:
		flaggy.ShowHelpAndExit("unknown renderer " + opts.Renderer)
	}
	if err != nil {
		log.Fatal(err)
	}
}
