// SPDX-License-Identifier: Unlicense OR MIT

package slider

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Defaults for the value range and the quantization step.
const (
	DefaultMin  float32 = 0
	DefaultMax  float32 = 1
	DefaultStep float32 = 1
)

// Style draws a horizontal slider for a Float. The three visual
// elements are pluggable: Track spans the whole control, Fill covers
// the leading portion proportional to the value, and Thumb marks the
// value itself.
type Style struct {
	Min, Max float32
	// Step is the quantization unit for values. Layout panics when it
	// is not positive.
	Step float32
	// ThumbSize is the width and height of the thumb. It also sets the
	// height of the control.
	ThumbSize unit.Value
	// TrackHeight is the height of the track and fill elements. It is
	// capped at ThumbSize.
	TrackHeight unit.Value
	// Color tints the fill and the thumb, TrackColor the track behind
	// them. They only apply to the default elements.
	Color      color.RGBA
	TrackColor color.RGBA
	// Track, Fill and Thumb render the visual elements. Each is invoked
	// with exact constraints for its element's size. Nil slots fall back
	// to capsule and disc defaults.
	Track layout.Widget
	Fill  layout.Widget
	Thumb layout.Widget
	Float *Float
}

// Slider configures a slider in the range [min, max] from the theme.
// The step defaults to DefaultStep; assign to Step to override it.
// Slider panics if the range is empty or reversed.
func Slider(th *material.Theme, f *Float, min, max float32) Style {
	if !(min < max) {
		panic("slider: min must be less than max")
	}
	return Style{
		Min:         min,
		Max:         max,
		Step:        DefaultStep,
		ThumbSize:   unit.Dp(12),
		TrackHeight: unit.Dp(4),
		Color:       th.Color.Primary,
		TrackColor:  mulAlpha(th.Color.Primary, 96),
		Float:       f,
	}
}

func (s Style) Layout(gtx layout.Context) layout.Dimensions {
	if !(s.Min < s.Max) {
		panic("slider: min must be less than max")
	}
	if !(s.Step > 0) {
		panic("slider: step must be positive")
	}
	thumbSize := gtx.Px(s.ThumbSize)
	if thumbSize <= 0 {
		panic("slider: thumb size must be positive")
	}
	trackHeight := gtx.Px(s.TrackHeight)
	if trackHeight > thumbSize {
		trackHeight = thumbSize
	}

	size := gtx.Constraints.Min
	// Keep a minimum length so that the track is always visible.
	minLength := 3 * thumbSize
	if size.X < minLength {
		size.X = minLength
	}
	size.Y = thumbSize

	st := op.Push(gtx.Ops)
	gtx.Constraints.Min = size
	s.Float.Layout(gtx, thumbSize, s.Min, s.Max, s.Step)
	st.Pop()

	col, trackCol := s.Color, s.TrackColor
	if gtx.Queue == nil {
		col = mulAlpha(col, 150)
		trackCol = mulAlpha(trackCol, 150)
	}
	track, fill, thumb := s.Track, s.Fill, s.Thumb
	if track == nil {
		track = Capsule(trackCol)
	}
	if fill == nil {
		fill = Capsule(col)
	}
	if thumb == nil {
		thumb = Disc(col)
	}

	percent := s.Float.Percentage(s.Min, s.Max)
	fillWidth := int(float32(size.X)*percent + .5)
	trackOff := float32(size.Y-trackHeight) * .5

	// Track first, the fill over it, the thumb on top of both.
	st = op.Push(gtx.Ops)
	op.Offset(f32.Pt(0, trackOff)).Add(gtx.Ops)
	gtx.Constraints = layout.Exact(image.Pt(size.X, trackHeight))
	track(gtx)
	st.Pop()

	if fillWidth > 0 {
		st = op.Push(gtx.Ops)
		op.Offset(f32.Pt(0, trackOff)).Add(gtx.Ops)
		gtx.Constraints = layout.Exact(image.Pt(fillWidth, trackHeight))
		fill(gtx)
		st.Pop()
	}

	st = op.Push(gtx.Ops)
	op.Offset(f32.Pt(s.Float.Pos(), 0)).Add(gtx.Ops)
	gtx.Constraints = layout.Exact(image.Pt(thumbSize, thumbSize))
	thumb(gtx)
	st.Pop()

	return layout.Dimensions{Size: size}
}

// Capsule returns a widget that fills its minimum constraints with a
// pill shaped block of the given color. It is the default track and
// fill element.
func Capsule(col color.RGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		defer op.Push(gtx.Ops).Pop()
		sz := gtx.Constraints.Min
		rr := float32(sz.Y) * .5
		if w := float32(sz.X) * .5; rr > w {
			rr = w
		}
		r := f32.Rectangle{Max: layout.FPt(sz)}
		clip.RRect{
			Rect: r,
			NE:   rr, NW: rr, SE: rr, SW: rr,
		}.Add(gtx.Ops)
		paint.ColorOp{Color: col}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		return layout.Dimensions{Size: sz}
	}
}

// Disc returns a widget that fills its minimum constraints with a
// circle of the given color, centered when the constraints are not
// square. It is the default thumb element.
func Disc(col color.RGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		defer op.Push(gtx.Ops).Pop()
		sz := gtx.Constraints.Min
		side := sz.X
		if sz.Y < side {
			side = sz.Y
		}
		off := f32.Pt(float32(sz.X-side)*.5, float32(sz.Y-side)*.5)
		op.Offset(off).Add(gtx.Ops)
		drawDisc(gtx.Ops, float32(side), col)
		return layout.Dimensions{Size: sz}
	}
}

func drawDisc(ops *op.Ops, sz float32, col color.RGBA) {
	defer op.Push(ops).Pop()
	rr := sz / 2
	r := f32.Rectangle{Max: f32.Point{X: sz, Y: sz}}
	clip.RRect{
		Rect: r,
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}.Add(ops)
	paint.ColorOp{Color: col}.Add(ops)
	paint.PaintOp{}.Add(ops)
}

func mulAlpha(c color.RGBA, alpha uint8) color.RGBA {
	a := uint16(alpha)
	return color.RGBA{
		A: uint8(uint16(c.A) * a / 0xff),
		R: uint8(uint16(c.R) * a / 0xff),
		G: uint8(uint16(c.G) * a / 0xff),
		B: uint8(uint16(c.B) * a / 0xff),
	}
}
