package core

// Color is an opaque RGB value carried by a living cell. Channel values are
// compared byte-for-byte; there is no alpha.
type Color struct {
	R, G, B uint8
}

// Cell is one grid slot: dead (Alive == false, Color meaningless) or alive
// with a color.
type Cell struct {
	Color Color
	Alive bool
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []Cell
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
