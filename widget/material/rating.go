// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"
	"github.com/chewxy/math32"

	"github.com/gioui-contrib/rating/internal/f32color"
	"github.com/gioui-contrib/rating/internal/star"
	"github.com/gioui-contrib/rating/widget"
)

// DefaultFontSize is the indicator size used when neither a width nor
// indicator images are given.
const DefaultFontSize = unit.Sp(20)

// RatingStyle draws a widget.Rating.
type RatingStyle struct {
	// EmptyColor and SolidColor paint procedural stars, unless the rating
	// has a widget.Colors appearance.
	EmptyColor color.NRGBA
	SolidColor color.NRGBA
	// StarWidth, if non-zero, overrides the indicator width derived from
	// the indicator images or FontSize.
	StarWidth unit.Dp
	// FontSize sizes procedural indicators. Zero means DefaultFontSize.
	FontSize unit.Sp
	// Spacing separates indicators.
	Spacing unit.Dp
	Rating  *widget.Rating
}

// Rating returns a style for drawing r with the colors of th.
func Rating(th *giomaterial.Theme, r *widget.Rating) RatingStyle {
	return RatingStyle{
		EmptyColor: f32color.MulAlpha(th.Palette.Fg, 0x50),
		SolidColor: th.Palette.ContrastBg,
		FontSize:   DefaultFontSize,
		Rating:     r,
	}
}

func (s RatingStyle) Layout(gtx layout.Context) layout.Dimensions {
	r := s.Rating
	dims := r.Layout(gtx, s.starWidth(gtx), gtx.Dp(s.Spacing))

	empty, solid := s.EmptyColor, s.SolidColor
	if c, ok := r.Appearance().(widget.Colors); ok {
		empty, solid = c.Empty, c.Solid
	}
	if !gtx.Enabled() {
		empty, solid = f32color.Disabled(empty), f32color.Disabled(solid)
		if _, ok := r.Appearance().(widget.Images); ok {
			defer paint.PushOpacity(gtx.Ops, 0.6).Pop()
		}
	}

	defer op.Offset(r.Origin).Push(gtx.Ops).Pop()
	size := r.Size()
	emptyImg, solidImg := r.IndicatorImages(image.Pt(r.Slot(0).Dx(), size.Y))
	for i := 0; i < r.Max(); i++ {
		slot := r.Slot(i)
		solidPart, emptyPart := split(slot, r.Fill(i))
		drawIndicator(gtx.Ops, slot, emptyPart, emptyImg, empty)
		drawIndicator(gtx.Ops, slot, solidPart, solidImg, solid)
	}
	return dims
}

func (s RatingStyle) starWidth(gtx layout.Context) int {
	if s.StarWidth > 0 {
		return gtx.Dp(s.StarWidth)
	}
	if w := s.Rating.ImageWidth(); w > 0 {
		return gtx.Dp(unit.Dp(w))
	}
	fs := s.FontSize
	if fs <= 0 {
		fs = DefaultFontSize
	}
	return gtx.Sp(fs)
}

// split divides slot at fill times its width into the solid part on the
// left and the empty part on the right.
func split(slot image.Rectangle, fill float32) (solid, empty image.Rectangle) {
	x := slot.Min.X + int(math32.Round(fill*float32(slot.Dx())))
	solid = image.Rect(slot.Min.X, slot.Min.Y, x, slot.Max.Y)
	empty = image.Rect(x, slot.Min.Y, slot.Max.X, slot.Max.Y)
	return solid, empty
}

// drawIndicator draws the part of the indicator in slot, either the image
// if present or a star in color c.
func drawIndicator(ops *op.Ops, slot, part image.Rectangle, img *paint.ImageOp, c color.NRGBA) {
	if part.Empty() {
		return
	}
	defer clip.Rect(part).Push(ops).Pop()
	defer op.Offset(slot.Min).Push(ops).Pop()
	if img != nil {
		img.Add(ops)
		paint.PaintOp{}.Add(ops)
		return
	}
	path := star.Path(ops, float32(slot.Dx()))
	paint.FillShape(ops, c, clip.Outline{Path: path}.Op())
}
