package app

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"chromalife/pkg/core"
)

var namedColors = map[string]core.Color{
	"black":   {},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255},
	"green":   {G: 255},
	"blue":    {B: 255},
	"yellow":  {R: 255, G: 255},
	"cyan":    {G: 255, B: 255},
	"magenta": {R: 255, B: 255},
	"orange":  {R: 255, G: 165},
	"purple":  {R: 128, B: 128},
	"pink":    {R: 255, G: 192, B: 203},
	"navy":    {B: 128},
}

// ParseColor turns a color name or a "r,g,b" byte triple into a core.Color.
func ParseColor(s string) (core.Color, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) == 3 {
		channels := [3]uint8{}
		ok := true
		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				ok = false
				break
			}
			channels[i] = uint8(v)
		}
		if ok {
			return core.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
		}
	}
	return core.Color{}, errors.Errorf("unrecognized color %q, want a name or \"r,g,b\"", s)
}
