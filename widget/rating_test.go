// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/gioui-contrib/rating/widget"
	"golang.org/x/image/colornames"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

// ratingHarness lays out a rating in a router-driven context.
type ratingHarness struct {
	r       input.Router
	gtx     layout.Context
	rating  *widget.Rating
	width   int
	spacing int
}

func newHarness(rating *widget.Rating, width, spacing int) *ratingHarness {
	h := &ratingHarness{rating: rating, width: width, spacing: spacing}
	h.gtx = layout.Context{
		Ops:    new(op.Ops),
		Source: h.r.Source(),
	}
	h.frame()
	return h
}

func (h *ratingHarness) frame() layout.Dimensions {
	h.gtx.Ops.Reset()
	dims := h.rating.Layout(h.gtx, h.width, h.spacing)
	h.r.Frame(h.gtx.Ops)
	return dims
}

func (h *ratingHarness) pointer(kind pointer.Kind, x, y float32) {
	h.r.Queue(pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(x, y),
	})
}

func TestRatingClamp(t *testing.T) {
	r := widget.NewRating(image.Point{}, 5, nil)
	for _, tc := range []struct {
		in, want float32
	}{
		{3, 3},
		{3.4, 3.4},
		{0, 0},
		{5, 5},
		{-1, 0},
		{5.0001, 5},
		{100, 5},
		{float32(math.Inf(1)), 5},
		{float32(math.Inf(-1)), 0},
		{float32(math.NaN()), 0},
	} {
		r.SetValue(tc.in)
		if got := r.Value(); got != tc.want {
			t.Errorf("SetValue(%v): got %v, want %v", tc.in, got, tc.want)
		}
		if v := r.Value(); v < 0 || v > float32(r.Max()) {
			t.Errorf("SetValue(%v): %v outside [0, %d]", tc.in, v, r.Max())
		}
	}
}

func TestRatingMaxClamp(t *testing.T) {
	for _, max := range []int{0, -3} {
		r := widget.NewRating(image.Point{}, max, nil)
		if r.Max() != 1 {
			t.Errorf("NewRating(max=%d).Max() = %d, want 1", max, r.Max())
		}
	}
	r := widget.NewRating(image.Point{}, 5, nil)
	r.SetValue(4.5)
	r.SetMax(3)
	if r.Value() != 3 {
		t.Errorf("after SetMax(3) value is %v, want 3", r.Value())
	}
}

func TestRatingFill(t *testing.T) {
	r := widget.NewRating(image.Point{}, 5, nil)
	r.SetValue(3.4)
	want := []float32{1, 1, 1, 0.4, 0}
	for i, w := range want {
		if got := r.Fill(i); !near(got, w) {
			t.Errorf("Fill(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestRatingSize(t *testing.T) {
	for _, tc := range []struct {
		max, width, spacing int
	}{
		{1, 20, 0},
		{5, 20, 0},
		{5, 20, 4},
		{10, 13, 7},
	} {
		r := widget.NewRating(image.Point{}, tc.max, nil)
		h := newHarness(r, tc.width, tc.spacing)
		want := image.Pt(tc.max*tc.width+(tc.max-1)*tc.spacing, tc.width)
		if got := r.Size(); got != want {
			t.Errorf("%+v: Size() = %v, want %v", tc, got, want)
		}
		if got := widget.RowSize(tc.max, tc.width, tc.spacing); got != want {
			t.Errorf("%+v: RowSize = %v, want %v", tc, got, want)
		}
		if dims := h.frame(); dims.Size != want {
			t.Errorf("%+v: dims %v, want %v", tc, dims.Size, want)
		}
	}
}

func TestRatingDimensionsIncludeOrigin(t *testing.T) {
	r := widget.NewRating(image.Pt(10, 5), 5, nil)
	h := newHarness(r, 20, 0)
	if got, want := h.frame().Size, image.Pt(110, 25); got != want {
		t.Errorf("dims %v, want %v", got, want)
	}
}

func TestRatingPointer(t *testing.T) {
	r := widget.NewRating(image.Pt(10, 5), 5, nil)
	h := newHarness(r, 20, 0)

	h.pointer(pointer.Press, 10+68, 15)
	if !r.Update(h.gtx) {
		t.Fatal("press did not change the rating")
	}
	if !near(r.Value(), 3.4) {
		t.Errorf("press: rating %v, want 3.4", r.Value())
	}
	if !r.Tracking() {
		t.Error("not tracking after press")
	}

	h.pointer(pointer.Move, 1000, 15)
	r.Update(h.gtx)
	if r.Value() != 5 {
		t.Errorf("drag past the end: rating %v, want 5", r.Value())
	}

	h.pointer(pointer.Move, 0, 15)
	r.Update(h.gtx)
	if r.Value() != 0 {
		t.Errorf("drag before the origin: rating %v, want 0", r.Value())
	}

	h.pointer(pointer.Move, 10+30, 15)
	r.Update(h.gtx)
	if !near(r.Value(), 1.5) {
		t.Errorf("drag: rating %v, want 1.5", r.Value())
	}

	h.pointer(pointer.Release, 10+30, 15)
	r.Update(h.gtx)
	if r.Tracking() {
		t.Error("still tracking after release")
	}

	h.frame()
	h.pointer(pointer.Move, 10+90, 15)
	if r.Update(h.gtx) {
		t.Error("hover changed the rating")
	}
}

func TestRatingPointerRightEdge(t *testing.T) {
	r := widget.NewRating(image.Point{}, 5, nil)
	h := newHarness(r, 20, 4)

	h.pointer(pointer.Press, 50, 10)
	r.Update(h.gtx)
	// The right edge of the last indicator.
	h.pointer(pointer.Move, 4*24+20, 10)
	r.Update(h.gtx)
	if r.Value() != 5 {
		t.Errorf("right edge: rating %v, want 5", r.Value())
	}
	// A position in the gap after the second indicator.
	h.pointer(pointer.Move, 24+22, 10)
	r.Update(h.gtx)
	if r.Value() != 2 {
		t.Errorf("gap: rating %v, want 2", r.Value())
	}
}

func TestRatingSnap(t *testing.T) {
	for _, tc := range []struct {
		snap widget.Snap
		x    float32
		want float32
	}{
		{widget.SnapNone, 66, 3.3},
		{widget.SnapHalf, 66, 3.5},
		{widget.SnapHalf, 64, 3},
		{widget.SnapWhole, 66, 3},
		{widget.SnapWhole, 72, 4},
	} {
		r := widget.NewRating(image.Point{}, 5, nil)
		r.Snap = tc.snap
		h := newHarness(r, 20, 0)
		h.pointer(pointer.Press, tc.x, 10)
		r.Update(h.gtx)
		if !near(r.Value(), tc.want) {
			t.Errorf("snap %d at %v: rating %v, want %v", tc.snap, tc.x, r.Value(), tc.want)
		}
	}
}

func TestRatingKeys(t *testing.T) {
	r := widget.NewRating(image.Point{}, 5, nil)
	r.SetValue(3.4)
	h := newHarness(r, 20, 0)
	h.gtx.Execute(key.FocusCmd{Tag: r})
	h.frame()
	r.Update(h.gtx)
	if !r.Focused() {
		t.Fatal("rating did not gain focus")
	}

	press := func(name key.Name) bool {
		h.r.Queue(key.Event{Name: name, State: key.Press})
		return r.Update(h.gtx)
	}
	if !press(key.NameRightArrow) || r.Value() != 4 {
		t.Errorf("right arrow: rating %v, want 4", r.Value())
	}
	if !press(key.NameLeftArrow) || r.Value() != 3 {
		t.Errorf("left arrow: rating %v, want 3", r.Value())
	}
	if !press(key.NameEnd) || r.Value() != 5 {
		t.Errorf("end: rating %v, want 5", r.Value())
	}
	if press(key.NameRightArrow) || r.Value() != 5 {
		t.Errorf("right arrow at max: rating %v, want 5", r.Value())
	}
	if !press(key.NameHome) || r.Value() != 0 {
		t.Errorf("home: rating %v, want 0", r.Value())
	}

	r.Snap = widget.SnapHalf
	if !press(key.NameRightArrow) || r.Value() != 0.5 {
		t.Errorf("half step: rating %v, want 0.5", r.Value())
	}
}

func TestRatingAppearanceMode(t *testing.T) {
	colors := widget.Colors{Solid: color.NRGBA(colornames.Gold)}
	r := widget.NewRating(image.Point{}, 5, colors)
	if err := r.SetAppearance(widget.Colors{}); err != nil {
		t.Errorf("changing colors: %v", err)
	}
	if err := r.SetAppearance(nil); err != nil {
		t.Errorf("resetting to default: %v", err)
	}
	if err := r.SetAppearance(widget.Images{}); !errors.Is(err, widget.ErrAppearanceMode) {
		t.Errorf("switching to images: got %v, want ErrAppearanceMode", err)
	}

	r = widget.NewRating(image.Point{}, 5, widget.Images{})
	if err := r.SetAppearance(colors); !errors.Is(err, widget.ErrAppearanceMode) {
		t.Errorf("switching to colors: got %v, want ErrAppearanceMode", err)
	}
	if _, ok := r.Appearance().(widget.Images); !ok {
		t.Errorf("appearance changed to %T after a rejected switch", r.Appearance())
	}
}

func TestRatingString(t *testing.T) {
	r := widget.NewRating(image.Point{}, 5, nil)
	r.SetValue(3.5)
	if got, want := r.String(), "3.5 of 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
