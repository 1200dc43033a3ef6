// SPDX-License-Identifier: Unlicense OR MIT

package timeofday

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/x/slider"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		secs     float32
		format24 bool
		want     string
	}{
		{0, true, "00:00"},
		{0, false, "12:00 AM"},
		{9*3600 + 5*60, true, "09:05"},
		{9*3600 + 5*60, false, "9:05 AM"},
		{12 * 3600, true, "12:00"},
		{12 * 3600, false, "12:00 PM"},
		{13*3600 + 30*60, true, "13:30"},
		{13*3600 + 30*60, false, "1:30 PM"},
		{23*3600 + 59*60, true, "23:59"},
		{SecondsPerDay, true, "00:00"},
		{SecondsPerDay, false, "12:00 AM"},
	}
	for _, tc := range tests {
		if got := Format(tc.secs, tc.format24); got != tc.want {
			t.Errorf("Format(%v, %v) = %q, expected %q", tc.secs, tc.format24, got, tc.want)
		}
	}
}

func TestSecondsClockRoundtrip(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	at := time.Date(2021, time.March, 14, 9, 26, 53, 0, loc)
	secs := Seconds(at)
	if want := float32(9*3600 + 26*60 + 53); secs != want {
		t.Fatalf("Seconds = %v, expected %v", secs, want)
	}
	if back := Clock(at, secs); !back.Equal(at) {
		t.Errorf("Clock(base, Seconds(base)) = %v, expected %v", back, at)
	}
}

func TestPickerDefaults(t *testing.T) {
	th := material.NewTheme(gofont.Collection())
	f := new(slider.Float)
	p := Picker(th, f)
	if p.StepSeconds != 60 {
		t.Errorf("got step %d seconds, expected 60", p.StepSeconds)
	}
	if !p.Format24h {
		t.Errorf("got 12-hour labels, expected 24-hour by default")
	}
}

func TestPickerTime(t *testing.T) {
	th := material.NewTheme(gofont.Collection())
	f := new(slider.Float)
	p := Picker(th, f)
	p.Base = time.Date(2021, time.June, 5, 23, 59, 0, 0, time.UTC)

	at := time.Date(2021, time.June, 5, 15, 4, 5, 0, time.UTC)
	p.SetTime(at)
	if want := float32(15*3600 + 4*60 + 5); f.Value != want {
		t.Fatalf("SetTime set value %v, expected %v", f.Value, want)
	}
	if got := p.Time(); !got.Equal(at) {
		t.Errorf("Time = %v, expected %v", got, at)
	}
}

func TestPickerDragSnapsToMinutes(t *testing.T) {
	th := material.NewTheme(gofont.Collection())
	f := new(slider.Float)
	p := Picker(th, f)
	p.ThumbSize = unit.Px(20)
	p.TrackHeight = unit.Px(6)

	var r router.Router
	frame := func() layout.Dimensions {
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Constraints: layout.Exact(image.Pt(420, 40)),
			Queue:       &r,
		}
		dims := p.Layout(gtx)
		r.Frame(gtx.Ops)
		return dims
	}

	// The label band above the control is the theme text size plus a
	// 4 pixel gap, 20 pixels at this metric.
	if dims := frame(); dims.Size != image.Pt(420, 40) {
		t.Fatalf("got picker dimensions %v, expected %v", dims.Size, image.Pt(420, 40))
	}

	var commits []float32
	f.OnCommit = func(v float32) { commits = append(commits, v) }

	// Events land below the label band, in the control itself.
	r.Add(pointer.Event{
		Type:     pointer.Press,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonLeft,
		Position: f32.Pt(15, 30),
	})
	frame()
	if !f.Dragging() {
		t.Fatalf("expected a drag after press")
	}

	r.Add(pointer.Event{
		Type:     pointer.Move,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonLeft,
		Position: f32.Pt(215, 30),
	})
	frame()
	if want := float32(12 * 3600); f.Value != want {
		t.Fatalf("got value %v, expected %v", f.Value, want)
	}
	if int(f.Value)%60 != 0 {
		t.Errorf("got value %v, expected a whole minute", f.Value)
	}
	if got, want := Format(f.Value, p.Format24h), "12:00"; got != want {
		t.Errorf("got label %q, expected %q", got, want)
	}

	r.Add(pointer.Event{
		Type:     pointer.Release,
		Source:   pointer.Mouse,
		Position: f32.Pt(215, 30),
	})
	frame()
	if f.Dragging() {
		t.Errorf("expected the drag to end on release")
	}
	if len(commits) != 1 || commits[0] != 12*3600 {
		t.Errorf("got commits %v, expected exactly one at noon", commits)
	}
}
