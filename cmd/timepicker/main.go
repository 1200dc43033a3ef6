// SPDX-License-Identifier: Unlicense OR MIT

// Command timepicker is a time of day picker built on the slider
// widget. Settings come from an optional config.yaml that is watched
// and reloaded while the picker runs.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/app/headless"
	"gioui.org/font/gofont"
	"gioui.org/io/router"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/x/slider"
	"gioui.org/x/slider/timeofday"
)

var (
	screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")
	configDir  = flag.String("config", ".", "directory to look for config.yaml in")
	verbose    = flag.Bool("verbose", false, "verbose log output")
)

type (
	D = layout.Dimensions
	C = layout.Context
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	log := logger.Named("main")

	cfg := NewConfig(logger, *configDir)
	if err := cfg.Load(); err != nil {
		log.Fatalw("Failed to load config", "error", err)
	}

	settings := cfg.Settings()
	u := newUI(logger.Named("ui"), settings)

	if *screenshot != "" {
		if err := u.saveScreenshot(*screenshot); err != nil {
			log.Fatalw("Failed to save screenshot", "error", err)
		}
		os.Exit(0)
	}

	reload := cfg.SubscribeToChanges()
	cfg.Watch()

	go func() {
		w := app.NewWindow(
			app.Title("Time picker"),
			app.Size(unit.Dp(float32(settings.WindowWidth)), unit.Dp(float32(settings.WindowHeight))),
		)
		if err := u.loop(w, reload); err != nil {
			log.Fatalw("Window loop failed", "error", err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// ui holds the picker state between frames. settings is the snapshot
// the frame loop works from; reloads replace it between frames.
type ui struct {
	log      *zap.SugaredLogger
	settings Settings

	th        *material.Theme
	float     slider.Float
	resetBtn  widget.Clickable
	resetIcon *widget.Icon

	editing   bool
	committed string
}

func newUI(log *zap.SugaredLogger, settings Settings) *ui {
	u := &ui{
		log:      log,
		settings: settings,
		th:       material.NewTheme(gofont.Collection()),
	}
	u.resetIcon = mustIcon(widget.NewIcon(icons.ActionRestore))
	u.float.Value = settings.InitialSeconds()
	u.float.OnEditingChanged = func(editing bool) {
		u.editing = editing
		log.Debugw("Editing state changed", "editing", editing)
	}
	u.float.OnCommit = func(v float32) {
		u.committed = timeofday.Format(v, u.settings.Format24h)
		log.Infow("Time picked", "time", u.committed)
	}
	return u
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func (u *ui) loop(w *app.Window, reload chan Settings) error {
	var ops op.Ops
	for {
		select {
		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				u.layout(gtx)
				e.Frame(gtx.Ops)
			}
		case s := <-reload:
			u.settings = s
			u.log.Infow("Config reloaded",
				"stepMinutes", s.StepMinutes,
				"format24h", s.Format24h)
			w.Invalidate()
		}
	}
}

func (u *ui) layout(gtx C) D {
	for u.resetBtn.Clicked() {
		u.float.Value = timeofday.Seconds(time.Now())
		u.committed = ""
		u.log.Debugw("Reset to the current time")
	}

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, u.layoutPicker),
					layout.Rigid(func(gtx C) D {
						return layout.UniformInset(unit.Dp(8)).Layout(gtx,
							material.H6(u.th, timeofday.Format(u.float.Value, u.settings.Format24h)).Layout,
						)
					}),
					layout.Rigid(material.IconButton(u.th, &u.resetBtn, u.resetIcon).Layout),
				)
			}),
			layout.Rigid(func(gtx C) D {
				status := "Drag to pick a time"
				if u.editing {
					status = "Picking..."
				} else if u.committed != "" {
					status = "Picked " + u.committed
				}
				lbl := material.Caption(u.th, status)
				lbl.Color = u.th.Color.Hint
				return lbl.Layout(gtx)
			}),
		)
	})
}

func (u *ui) layoutPicker(gtx C) D {
	p := timeofday.Picker(u.th, &u.float)
	p.StepSeconds = u.settings.StepMinutes * 60
	p.Format24h = u.settings.Format24h
	return p.Layout(gtx)
}

func (u *ui) saveScreenshot(f string) error {
	const scale = 1.5
	sz := image.Pt(int(float32(u.settings.WindowWidth)*scale), int(float32(u.settings.WindowHeight)*scale))
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: scale, PxPerSp: scale},
		Constraints: layout.Exact(sz),
		Queue:       new(router.Router),
	}
	u.layout(gtx)
	w.Frame(gtx.Ops)
	img, err := w.Screenshot()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return ioutil.WriteFile(f, buf.Bytes(), 0666)
}
