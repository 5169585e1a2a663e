// Package term renders the simulation in the terminal: gocui owns raw mode
// and layout, cells are drawn as 256-color half blocks so one terminal row
// carries two grid rows.
package term

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"chromalife/internal/app"
	"chromalife/internal/ui"
	"chromalife/pkg/core"
)

const (
	boardView  = "board"
	statusView = "status"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(*gocui.Gui, *gocui.View) error
}

// ConsoleUI drives the simulation and paints it into gocui views.
type ConsoleUI struct {
	sim   core.Sim
	opts  *app.Options
	g     *gocui.Gui
	stats *ui.Stats
	timer *core.FixedStep

	mu         sync.Mutex // guards sim, paused and the counters below
	paused     bool
	generation int
	lastStep   time.Time

	deadIndex uint8
	keys      []keyBinding
	done      chan struct{}
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(sim core.Sim, opts *app.Options) error {
	background, err := app.ParseColor(opts.BgColor)
	if err != nil {
		return err
	}

	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return err
	}
	defer g.Close()

	t := &ConsoleUI{
		sim:       sim,
		opts:      opts,
		g:         g,
		stats:     ui.NewStats(),
		timer:     core.NewFixedStep(opts.FPS),
		deadIndex: xterm256(background),
		done:      make(chan struct{}),
	}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit},
		{'q', "Q", "quit", t.cmdQuit},
		{gocui.KeyEsc, "ESC", "quit", t.cmdQuit},
		{gocui.KeySpace, "SPACE", "pause", t.cmdTogglePause},
		{'n', "N", "single step", t.cmdStep},
		{'r', "R", "reset", t.cmdReset},
		{'s', "S", "reshuffle", t.cmdReshuffle},
	}

	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, kb.handler); err != nil {
			return err
		}
	}

	go t.tickLoop()

	err = g.MainLoop()
	close(t.done)
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tickLoop advances the simulation at the configured rate and asks gocui to
// repaint after each generation.
func (t *ConsoleUI) tickLoop() {
	for {
		select {
		case <-t.done:
			return
		default:
		}
		if t.timer.ShouldStep() {
			t.mu.Lock()
			if !t.paused {
				t.stepLocked()
			}
			t.mu.Unlock()
			t.g.Update(func(*gocui.Gui) error { return nil })
		}
		time.Sleep(time.Millisecond)
	}
}

// stepLocked advances one generation. Callers hold t.mu.
func (t *ConsoleUI) stepLocked() {
	start := time.Now()
	t.sim.Step()
	t.generation++
	t.stats.Update(t.generation, core.Population(t.sim.Cells()), time.Since(t.lastStep))
	t.lastStep = start
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := t.sim.Size()
	boardRows := (size.H + 1) / 2

	bw := size.W + 1
	if bw > maxX-1 {
		bw = maxX - 1
	}
	if bw < 2 {
		bw = 2
	}
	bh := boardRows + 1
	if bh > maxY-4 {
		bh = maxY - 4
	}
	if bh < 2 {
		bh = 2
	}

	v, err := g.SetView(boardView, 0, 0, bw, bh)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Frame = false
	t.paintBoard(v)

	sv, err := g.SetView(statusView, 0, maxY-3, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Frame = true
	t.paintStatus(sv)
	return nil
}

func (t *ConsoleUI) paintBoard(v *gocui.View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	size := t.sim.Size()
	cells := t.sim.Cells()

	v.Clear()
	var sb strings.Builder
	for row := 0; row < size.H; row += 2 {
		top := cells[core.Index(size.W, row, 0) : core.Index(size.W, row, 0)+size.W]
		var bottom []core.Cell
		if row+1 < size.H {
			bottom = cells[core.Index(size.W, row+1, 0) : core.Index(size.W, row+1, 0)+size.W]
		}
		sb.Reset()
		renderHalfBlocks(&sb, top, bottom, t.deadIndex)
		fmt.Fprintln(v, sb.String())
	}
}

func (t *ConsoleUI) paintStatus(v *gocui.View) {
	t.mu.Lock()
	state := aurora.Cyan("running").String()
	if t.paused {
		state = aurora.Yellow("paused").String()
	}
	cells := t.sim.Cells()
	line := fmt.Sprintf("%s | gen %d | live %d | colors %d | %.1f gen/s",
		state, t.generation, core.Population(cells), core.ColorCount(cells),
		t.stats.GenerationsPerSecond)
	t.mu.Unlock()

	help := make([]string, 0, len(t.keys))
	for _, kb := range t.keys {
		help = append(help, fmt.Sprintf("%s %s", aurora.Bold(kb.name), kb.descr))
	}

	v.Clear()
	fmt.Fprintln(v, line, " ", strings.Join(help, "  "))
}

func (t *ConsoleUI) cmdQuit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdTogglePause(*gocui.Gui, *gocui.View) error {
	t.mu.Lock()
	t.paused = !t.paused
	t.mu.Unlock()
	return nil
}

func (t *ConsoleUI) cmdStep(*gocui.Gui, *gocui.View) error {
	t.mu.Lock()
	if t.paused {
		t.stepLocked()
	}
	t.mu.Unlock()
	return nil
}

func (t *ConsoleUI) cmdReset(*gocui.Gui, *gocui.View) error {
	t.resetWith(t.opts.Seed)
	return nil
}

func (t *ConsoleUI) cmdReshuffle(*gocui.Gui, *gocui.View) error {
	t.resetWith(time.Now().UnixNano())
	return nil
}

func (t *ConsoleUI) resetWith(seed int64) {
	t.mu.Lock()
	t.sim.Reset(seed)
	t.generation = 0
	t.mu.Unlock()
}
