// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state and event handling of a rating
// control: a row of indicators, usually stars, that the user taps or drags
// across to select a rating. Drawing is implemented by the widget/material
// package.
//
// A Rating is constructed once and kept across frames:
//
//	stars := widget.NewRating(image.Pt(16, 16), 5, nil)
//
// and polled for changes in the frame loop:
//
//	if stars.Update(gtx) {
//		fmt.Println("rated", stars.Value())
//	}
package widget
