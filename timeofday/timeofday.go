// SPDX-License-Identifier: Unlicense OR MIT

/*
Package timeofday binds a slider to a clock time.

The picker is a slider over the seconds of a day, drawn as a capsule
track with a round thumb. While the thumb is dragged, a clock label
floats above it showing the time under the thumb. Use Seconds and
Clock, or the Time and SetTime helpers, to move between the slider
value and absolute times.
*/
package timeofday

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"gioui.org/x/slider"
)

// SecondsPerDay is the value range of the picker, a full day.
const SecondsPerDay = 24 * 60 * 60

// PickerStyle draws a time of day picker for a slider.Float holding
// seconds since midnight.
type PickerStyle struct {
	// Format24h selects 24-hour clock labels over 12-hour ones.
	Format24h bool
	// StepSeconds is the quantization of the picked time.
	StepSeconds int
	// Base anchors Time to a calendar day. A zero Base means today.
	Base time.Time

	// ThumbSize is the diameter of the thumb; it also sets the height
	// of the control below the label band.
	ThumbSize   unit.Value
	TrackHeight unit.Value

	Theme *material.Theme
	Float *slider.Float
}

// Picker configures a time of day picker with minute steps and
// 24-hour labels.
func Picker(th *material.Theme, f *slider.Float) PickerStyle {
	return PickerStyle{
		Format24h:   true,
		StepSeconds: 60,
		ThumbSize:   unit.Dp(16),
		TrackHeight: unit.Dp(6),
		Theme:       th,
		Float:       f,
	}
}

// Time reports the picked time on the Base day.
func (p PickerStyle) Time() time.Time {
	base := p.Base
	if base.IsZero() {
		base = time.Now()
	}
	return Clock(base, p.Float.Value)
}

// SetTime positions the slider at the clock time of t.
func (p PickerStyle) SetTime(t time.Time) {
	p.Float.Value = Seconds(t)
}

func (p PickerStyle) Layout(gtx layout.Context) layout.Dimensions {
	st := slider.Slider(p.Theme, p.Float, 0, SecondsPerDay)
	st.Step = float32(p.StepSeconds)
	st.ThumbSize = p.ThumbSize
	st.TrackHeight = p.TrackHeight
	st.Thumb = p.thumb(st.Color)

	// Keep room above the control for the floating label.
	headroom := gtx.Px(p.Theme.TextSize) + gtx.Px(unit.Dp(4))

	stack := op.Push(gtx.Ops)
	op.Offset(f32.Pt(0, float32(headroom))).Add(gtx.Ops)
	dims := st.Layout(gtx)
	stack.Pop()

	if p.Float.Dragging() {
		p.layoutLabel(gtx, dims)
	}

	return layout.Dimensions{
		Size: image.Pt(dims.Size.X, dims.Size.Y+headroom),
	}
}

// layoutLabel draws the clock label centered over the thumb, clamped
// to the control's edges.
func (p PickerStyle) layoutLabel(gtx layout.Context, dims layout.Dimensions) {
	lbl := material.Caption(p.Theme, Format(p.Float.Value, p.Format24h))

	m := op.Record(gtx.Ops)
	cgtx := gtx
	cgtx.Constraints.Min = image.Point{}
	ldims := lbl.Layout(cgtx)
	call := m.Stop()

	thumb := float32(gtx.Px(p.ThumbSize))
	x := p.Float.Pos() + thumb/2 - float32(ldims.Size.X)/2
	if max := float32(dims.Size.X - ldims.Size.X); x > max {
		x = max
	}
	if x < 0 {
		x = 0
	}

	defer op.Push(gtx.Ops).Pop()
	op.Offset(f32.Pt(x, 0)).Add(gtx.Ops)
	call.Add(gtx.Ops)
}

// thumb draws a disc with a translucent shadow disc slightly larger
// than the thumb itself.
func (p PickerStyle) thumb(col color.RGBA) layout.Widget {
	shadow := argb(0x55000000)
	return func(gtx layout.Context) layout.Dimensions {
		sz := gtx.Constraints.Min
		const grow = 2
		stack := op.Push(gtx.Ops)
		op.Offset(f32.Pt(-grow/2, -grow/2+.75)).Add(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(image.Pt(sz.X+grow, sz.Y+grow))
		slider.Disc(shadow)(cgtx)
		stack.Pop()

		return slider.Disc(col)(gtx)
	}
}

// Seconds returns the clock time of t as seconds since midnight.
func Seconds(t time.Time) float32 {
	h, m, s := t.Clock()
	return float32(h*3600 + m*60 + s)
}

// Clock returns the absolute time secs seconds after midnight on the
// day of base, in base's location.
func Clock(base time.Time, secs float32) time.Time {
	midnight := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	return midnight.Add(time.Duration(float64(secs) * float64(time.Second)))
}

// Format renders a seconds since midnight value as a clock label.
// A full day wraps back to midnight.
func Format(secs float32, format24 bool) string {
	total := int(secs+0.5) % SecondsPerDay
	if total < 0 {
		total += SecondsPerDay
	}
	h := total / 3600
	m := total % 3600 / 60
	if format24 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

func argb(c uint32) color.RGBA {
	return color.RGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
