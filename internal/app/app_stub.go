//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"chromalife/pkg/core"
)

// Run is a placeholder used when the ebiten build tag is absent. The terminal
// renderer works in every build; the window requires `-tags ebiten`.
func Run(core.Sim, *Options) error {
	return errors.New("this build has no window renderer; rebuild with `-tags ebiten` or use --renderer term")
}
