// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"image"
	"image/color"

	"gioui.org/op/paint"
	xdraw "golang.org/x/image/draw"
)

// ErrAppearanceMode is returned when an appearance would switch a Rating
// between procedural stars and images.
var ErrAppearanceMode = errors.New("widget: rating appearance cannot switch between colors and images")

// Appearance selects how the indicators of a Rating are drawn. It is
// either nil (default procedural stars), Colors or Images.
type Appearance interface {
	isImages() bool
}

// Colors draws procedural stars in the two colors.
type Colors struct {
	Empty color.NRGBA
	Solid color.NRGBA
}

// Images draws image indicators, scaled to the indicator size. A nil
// image falls back to a procedural star for that part of the indicator.
type Images struct {
	Empty image.Image
	Solid image.Image
}

func (Colors) isImages() bool { return false }
func (Images) isImages() bool { return true }

func isImages(a Appearance) bool {
	return a != nil && a.isImages()
}

// ImageWidth returns the width in pixels of the widest indicator image,
// or zero if the control draws procedural stars only.
func (r *Rating) ImageWidth() int {
	im, ok := r.appearance.(Images)
	if !ok {
		return 0
	}
	w := 0
	for _, src := range []image.Image{im.Empty, im.Solid} {
		if src == nil {
			continue
		}
		if dx := src.Bounds().Dx(); dx > w {
			w = dx
		}
	}
	return w
}

// IndicatorImages returns the empty and solid images resampled to size.
// A nil result means that part is drawn as a procedural star.
func (r *Rating) IndicatorImages(size image.Point) (empty, solid *paint.ImageOp) {
	im, ok := r.appearance.(Images)
	if !ok || size.X <= 0 || size.Y <= 0 {
		return nil, nil
	}
	if im.Empty != nil {
		empty = r.empty.get(im.Empty, r.gen, size)
	}
	if im.Solid != nil {
		solid = r.solid.get(im.Solid, r.gen, size)
	}
	return empty, solid
}

// imageCache holds an indicator image resampled to the slot size.
type imageCache struct {
	gen  int
	size image.Point
	op   paint.ImageOp
	ok   bool
}

func (c *imageCache) get(src image.Image, gen int, size image.Point) *paint.ImageOp {
	if c.ok && c.gen == gen && c.size == size {
		return &c.op
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	c.op = paint.NewImageOp(dst)
	c.gen = gen
	c.size = size
	c.ok = true
	return &c.op
}
