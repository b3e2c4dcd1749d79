// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that demonstrates rating controls.

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/gpu/headless"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"
)

var (
	configFile = flag.String("config", "", "YAML file describing the rating controls")
	snap       = flag.String("snap", "", "snap policy for every control: none, half or whole")
	disable    = flag.Bool("disable", false, "disable all controls")
	screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")
)

func main() {
	flag.Parse()
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	controls, err := buildControls(cfg, *snap)
	if err != nil {
		log.Fatal(err)
	}
	if *screenshot != "" {
		if err := saveScreenshot(*screenshot, controls); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Ratings"), app.Size(unit.Dp(480), unit.Dp(640)))
		if err := loop(w, controls); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func newTheme() *giomaterial.Theme {
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th
}

func loop(w *app.Window, controls []*control) error {
	th := newTheme()
	list := &layout.List{Axis: layout.Vertical}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if *disable {
				gtx = gtx.Disabled()
			}
			for i, c := range controls {
				if c.rating.Update(gtx) {
					log.Printf("control %d: %s", i, c.rating)
				}
			}
			ratings(gtx, th, list, controls)
			e.Frame(gtx.Ops)
		}
	}
}

func saveScreenshot(f string, controls []*control) error {
	const scale = 1.5
	sz := image.Point{X: 480 * scale, Y: 640 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()
	var r input.Router
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
	}
	ratings(gtx, newTheme(), &layout.List{Axis: layout.Vertical}, controls)
	if err := w.Frame(gtx.Ops); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	out, err := os.Create(f)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func ratings(gtx layout.Context, th *giomaterial.Theme, list *layout.List, controls []*control) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return list.Layout(gtx, len(controls), func(gtx layout.Context, i int) layout.Dimensions {
			c := controls[i]
			return layout.Inset{Bottom: unit.Dp(24)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(c.style(th).Layout),
					layout.Rigid(giomaterial.Caption(th, c.rating.String()).Layout),
				)
			})
		})
	})
}
