// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/chewxy/math32"
)

// Rating is for selecting a value between zero and a maximum number of
// indicators, such as stars. Fractional values are allowed.
type Rating struct {
	// Origin offsets the control within its parent.
	Origin image.Point
	// Snap controls how pointer positions are rounded.
	Snap Snap

	value      float32
	max        int
	appearance Appearance
	// gen counts appearance changes, to invalidate the image caches.
	gen          int
	empty, solid imageCache

	drag    gesture.Drag
	focused bool
	metrics metrics
}

// Snap is a rounding policy for ratings selected by pointer.
type Snap uint8

const (
	// SnapNone selects the exact fraction under the pointer.
	SnapNone Snap = iota
	// SnapHalf rounds to the nearest half indicator.
	SnapHalf
	// SnapWhole rounds to the nearest whole indicator.
	SnapWhole
)

// metrics is the layout of the indicator row, cached until the count or
// the pixel sizes change.
type metrics struct {
	count   int
	width   int
	spacing int
	size    image.Point
}

// NewRating returns a control with max indicators located at origin.
// A max less than one is clamped to one. A nil appearance selects the
// default procedural stars.
func NewRating(origin image.Point, max int, a Appearance) *Rating {
	if max < 1 {
		max = 1
	}
	return &Rating{
		Origin:     origin,
		max:        max,
		appearance: a,
	}
}

// Value returns the current rating.
func (r *Rating) Value() float32 {
	return r.value
}

// SetValue sets the rating, clamped to [0, Max]. NaN is stored as 0.
func (r *Rating) SetValue(v float32) {
	r.setValue(v)
}

// Max returns the number of indicators.
func (r *Rating) Max() int {
	return r.max
}

// SetMax changes the number of indicators. The rating is clamped to the
// new range.
func (r *Rating) SetMax(max int) {
	if max < 1 {
		max = 1
	}
	r.max = max
	r.setValue(r.value)
}

// Appearance returns the appearance chosen at construction, or the last
// one set with SetAppearance.
func (r *Rating) Appearance() Appearance {
	return r.appearance
}

// SetAppearance replaces the colors or images of the control. The
// replacement must be of the same kind as the appearance the control was
// constructed with: procedural (nil or Colors) or Images. Otherwise
// ErrAppearanceMode is returned and the control is unchanged.
func (r *Rating) SetAppearance(a Appearance) error {
	if isImages(a) != isImages(r.appearance) {
		return ErrAppearanceMode
	}
	r.appearance = a
	r.gen++
	return nil
}

// Fill returns the fraction, between 0 and 1, of indicator i drawn solid.
func (r *Rating) Fill(i int) float32 {
	f := r.value - float32(i)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Size returns the size of the control as of the last Layout, excluding
// its origin.
func (r *Rating) Size() image.Point {
	return r.metrics.size
}

// Slot returns the bounds of indicator i relative to the origin, as of the
// last Layout.
func (r *Rating) Slot(i int) image.Rectangle {
	m := r.metrics
	x := i * (m.width + m.spacing)
	return image.Rect(x, 0, x+m.width, m.size.Y)
}

// Tracking reports whether a pointer is pressed on the control.
func (r *Rating) Tracking() bool {
	return r.drag.Dragging()
}

// Focused reports whether the control has keyboard focus.
func (r *Rating) Focused() bool {
	return r.focused
}

// RowSize returns the size of a row of count indicators of the given
// width, separated by spacing.
func RowSize(count, width, spacing int) image.Point {
	return image.Pt(count*width+(count-1)*spacing, width)
}

// Update processes pointer and key events and reports whether the rating
// was changed by the user.
func (r *Rating) Update(gtx layout.Context) bool {
	changed := false
	for {
		e, ok := r.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			gtx.Execute(key.FocusCmd{Tag: r})
		case pointer.Drag:
		default:
			continue
		}
		if r.metrics.width == 0 {
			continue
		}
		if r.setValue(r.valueAt(e.Position.X)) {
			changed = true
		}
	}
	for {
		e, ok := gtx.Event(
			key.FocusFilter{Target: r},
			key.Filter{Focus: r, Name: key.NameLeftArrow},
			key.Filter{Focus: r, Name: key.NameRightArrow},
			key.Filter{Focus: r, Name: key.NameHome},
			key.Filter{Focus: r, Name: key.NameEnd},
		)
		if !ok {
			break
		}
		switch e := e.(type) {
		case key.FocusEvent:
			r.focused = e.Focus
		case key.Event:
			if e.State != key.Press {
				break
			}
			v := r.value
			step := r.step()
			switch e.Name {
			case key.NameLeftArrow:
				v = (math32.Ceil(v/step) - 1) * step
			case key.NameRightArrow:
				v = (math32.Floor(v/step) + 1) * step
			case key.NameHome:
				v = 0
			case key.NameEnd:
				v = float32(r.max)
			}
			if r.setValue(v) {
				changed = true
			}
		}
	}
	return changed
}

// Layout processes events and lays out the input area of the control for
// indicators starWidth pixels wide and spacing pixels apart. The returned
// dimensions include the origin.
func (r *Rating) Layout(gtx layout.Context, starWidth, spacing int) layout.Dimensions {
	r.measure(starWidth, spacing)
	r.Update(gtx)
	size := r.metrics.size

	defer op.Offset(r.Origin).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	semantic.DescriptionOp(r.String()).Add(gtx.Ops)
	semantic.EnabledOp(gtx.Enabled()).Add(gtx.Ops)
	r.drag.Add(gtx.Ops)
	event.Op(gtx.Ops, r)

	return layout.Dimensions{Size: r.Origin.Add(size)}
}

// String describes the rating, for example "3.5 of 5".
func (r *Rating) String() string {
	return fmt.Sprintf("%.1f of %d", r.value, r.max)
}

func (r *Rating) measure(width, spacing int) {
	if width < 1 {
		width = 1
	}
	if spacing < 0 {
		spacing = 0
	}
	m := r.metrics
	if m.count == r.max && m.width == width && m.spacing == spacing {
		return
	}
	r.metrics = metrics{
		count:   r.max,
		width:   width,
		spacing: spacing,
		size:    RowSize(r.max, width, spacing),
	}
}

// valueAt maps a horizontal position relative to the origin to a rating.
// Positions in the gap after an indicator select the whole indicator.
func (r *Rating) valueAt(x float32) float32 {
	m := r.metrics
	if x <= 0 {
		return 0
	}
	pitch := float32(m.width + m.spacing)
	i := math32.Floor(x / pitch)
	if i >= float32(m.count) {
		return float32(m.count)
	}
	within := (x - i*pitch) / float32(m.width)
	if within > 1 {
		within = 1
	}
	return r.snap(i + within)
}

func (r *Rating) snap(v float32) float32 {
	switch r.Snap {
	case SnapHalf:
		return math32.Round(v*2) / 2
	case SnapWhole:
		return math32.Round(v)
	}
	return v
}

func (r *Rating) step() float32 {
	if r.Snap == SnapHalf {
		return 0.5
	}
	return 1
}

func (r *Rating) setValue(v float32) bool {
	switch hi := float32(r.max); {
	case math32.IsNaN(v) || v < 0:
		v = 0
	case v > hi:
		v = hi
	}
	if v == r.value {
		return false
	}
	r.value = v
	return true
}
