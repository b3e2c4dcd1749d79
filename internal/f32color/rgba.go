// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements the color manipulations used when drawing
// rating indicators.
package f32color

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled returns the disabled version of c: most of its chroma removed
// and its alpha reduced.
func Disabled(c color.NRGBA) color.NRGBA {
	cf, _ := colorful.MakeColor(opaque(c))
	h, chroma, l := cf.Hcl()
	d := colorful.Hcl(h, chroma*0.2, l).Clamped()
	r, g, b := d.RGB255()
	return MulAlpha(color.NRGBA{R: r, G: g, B: b, A: c.A}, 150)
}

// Parse parses a CSS color name ("gold") or a hex triplet ("#ffcc00").
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("f32color: invalid color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xFF
	return c
}
