// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"gopkg.in/yaml.v3"

	"github.com/gioui-contrib/rating/internal/f32color"
	"github.com/gioui-contrib/rating/widget"
	"github.com/gioui-contrib/rating/widget/material"
)

// iconSize is the resolution of rasterized icon indicators.
const iconSize = 96

const defaultConfig = `
controls:
  - max: 5
    rating: 3.4
  - max: 5
    rating: 2
    appearance: colors
    empty: lightgray
    solid: "#ffb300"
    spacing: 4
    snap: half
  - max: 10
    rating: 7
    appearance: colors
    empty: "#a7a7a7"
    solid: "#1b1b1b"
    fontSize: 14
    snap: whole
  - max: 5
    rating: 4.5
    appearance: icons
    solid: crimson
    empty: crimson
    starWidth: 36
    spacing: 2
  - max: 3
    rating: 1.5
    appearance: icon-fallback
    solid: seagreen
    empty: silver
    starWidth: 48
    x: 24
`

type config struct {
	Controls []controlConfig `yaml:"controls"`
}

type controlConfig struct {
	Max    int     `yaml:"max"`
	Rating float32 `yaml:"rating"`
	// Appearance is one of default, colors, icons and icon-fallback.
	Appearance string  `yaml:"appearance"`
	Empty      string  `yaml:"empty"`
	Solid      string  `yaml:"solid"`
	StarWidth  float32 `yaml:"starWidth"`
	FontSize   float32 `yaml:"fontSize"`
	Spacing    float32 `yaml:"spacing"`
	Snap       string  `yaml:"snap"`
	X          int     `yaml:"x"`
	Y          int     `yaml:"y"`
}

// control is a rating and the parameters of its style.
type control struct {
	rating    *widget.Rating
	starWidth unit.Dp
	fontSize  unit.Sp
	spacing   unit.Dp
	empty     *color.NRGBA
	solid     *color.NRGBA
}

func (c *control) style(th *giomaterial.Theme) material.RatingStyle {
	s := material.Rating(th, c.rating)
	s.StarWidth = c.starWidth
	if c.fontSize > 0 {
		s.FontSize = c.fontSize
	}
	s.Spacing = c.spacing
	if c.empty != nil {
		s.EmptyColor = *c.empty
	}
	if c.solid != nil {
		s.SolidColor = *c.solid
	}
	return s
}

// loadConfig reads the YAML file at path, or the built-in configuration if
// path is empty.
func loadConfig(path string) (*config, error) {
	data := []byte(defaultConfig)
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ratings: read config: %w", err)
		}
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*config, error) {
	cfg := new(config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ratings: parse config: %w", err)
	}
	if len(cfg.Controls) == 0 {
		return nil, errors.New("ratings: config has no controls")
	}
	return cfg, nil
}

// buildControls creates the controls of cfg. A non-empty snap overrides the
// snap policy of every control.
func buildControls(cfg *config, snap string) ([]*control, error) {
	var controls []*control
	for i, cc := range cfg.Controls {
		if snap != "" {
			cc.Snap = snap
		}
		c, err := newControl(cc)
		if err != nil {
			return nil, fmt.Errorf("ratings: control %d: %w", i, err)
		}
		controls = append(controls, c)
	}
	return controls, nil
}

func newControl(cc controlConfig) (*control, error) {
	snap, err := parseSnap(cc.Snap)
	if err != nil {
		return nil, err
	}
	empty, err := parseOptionalColor(cc.Empty)
	if err != nil {
		return nil, err
	}
	solid, err := parseOptionalColor(cc.Solid)
	if err != nil {
		return nil, err
	}
	var look widget.Appearance
	switch cc.Appearance {
	case "", "default":
	case "colors":
		if empty == nil || solid == nil {
			return nil, errors.New("colors appearance needs empty and solid colors")
		}
		look = widget.Colors{Empty: *empty, Solid: *solid}
	case "icons", "icon-fallback":
		if solid == nil {
			return nil, fmt.Errorf("%s appearance needs a solid color", cc.Appearance)
		}
		im := widget.Images{}
		im.Solid, err = widget.IconImage(icons.ToggleStar, iconSize, *solid)
		if err != nil {
			return nil, err
		}
		if cc.Appearance == "icons" {
			if empty == nil {
				return nil, errors.New("icons appearance needs an empty color")
			}
			im.Empty, err = widget.IconImage(icons.ToggleStarBorder, iconSize, *empty)
			if err != nil {
				return nil, err
			}
		}
		look = im
	default:
		return nil, fmt.Errorf("unknown appearance %q", cc.Appearance)
	}
	r := widget.NewRating(image.Pt(cc.X, cc.Y), cc.Max, look)
	r.Snap = snap
	r.SetValue(cc.Rating)
	return &control{
		rating:    r,
		starWidth: unit.Dp(cc.StarWidth),
		fontSize:  unit.Sp(cc.FontSize),
		spacing:   unit.Dp(cc.Spacing),
		empty:     empty,
		solid:     solid,
	}, nil
}

func parseSnap(s string) (widget.Snap, error) {
	switch s {
	case "", "none":
		return widget.SnapNone, nil
	case "half":
		return widget.SnapHalf, nil
	case "whole":
		return widget.SnapWhole, nil
	}
	return 0, fmt.Errorf("unknown snap policy %q", s)
}

func parseOptionalColor(s string) (*color.NRGBA, error) {
	if s == "" {
		return nil, nil
	}
	c, err := f32color.Parse(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
