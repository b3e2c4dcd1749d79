// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// IconImage rasterizes IconVG data, such as the icons in
// golang.org/x/exp/shiny/materialdesign/icons, into an image size pixels
// wide drawn in color c. The result can be used as an indicator image.
func IconImage(data []byte, size int, c color.NRGBA) (image.Image, error) {
	if size <= 0 {
		return nil, errors.New("widget: icon size must be positive")
	}
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("widget: decode icon: %w", err)
	}
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: size, Y: int(float32(size) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBAModel.Convert(c).(color.RGBA)
	if err := iconvg.Decode(&ico, data, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	}); err != nil {
		return nil, fmt.Errorf("widget: rasterize icon: %w", err)
	}
	return img, nil
}
