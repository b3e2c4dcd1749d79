// SPDX-License-Identifier: Unlicense OR MIT

// Package star computes the outline of a regular five-pointed star.
package star

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/chewxy/math32"
)

// InnerRatio is the ratio of the inner to the outer radius of a regular
// pentagram, (3-√5)/2.
const InnerRatio = 0.381966

// Points returns the ten vertices of a star centered at c with the given
// outer radius, alternating outer and inner vertices. The first vertex
// points straight up.
func Points(c f32.Point, outer float32) [10]f32.Point {
	var pts [10]f32.Point
	inner := outer * InnerRatio
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math32.Pi/2 + float32(i)*math32.Pi/5
		pts[i] = f32.Pt(c.X+r*math32.Cos(a), c.Y+r*math32.Sin(a))
	}
	return pts
}

// Path returns the star inscribed in the square of side size at the
// origin: its outer radius is size/2.
func Path(ops *op.Ops, size float32) clip.PathSpec {
	half := size / 2
	pts := Points(f32.Pt(half, half), half)
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p.End()
}
