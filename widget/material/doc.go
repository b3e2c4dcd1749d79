// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws rating controls in the Material design, using
// the colors of a gioui.org/widget/material Theme.
//
// The state and event handling of a rating live in widget.Rating; this
// package only draws it:
//
//	th := material.NewTheme()
//	stars := widget.NewRating(image.Point{}, 5, nil)
//
//	if stars.Update(gtx) {
//		fmt.Println("rated", stars.Value())
//	}
//	ratingmaterial.Rating(th, stars).Layout(gtx)
//
// Customization
//
// Colors and sizes are fields of the RatingStyle returned by Rating:
//
//	s := ratingmaterial.Rating(th, stars)
//	s.SolidColor = color.NRGBA{R: 0xff, G: 0xb3, A: 0xff}
//	s.Spacing = 4
//	s.Layout(gtx)
//
// A widget.Colors appearance overrides the style colors, and a
// widget.Images appearance replaces the stars with images.
package material
