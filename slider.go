// SPDX-License-Identifier: Unlicense OR MIT

package slider

import (
	"image"
	"math"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// Float is for selecting a value in a range. The value is shared with
// the host through the Value field: assign to it between frames to move
// the thumb, read it to observe drags. During a drag the widget mutates
// Value live, quantized to the step passed to Layout and clamped to the
// bounds.
type Float struct {
	Value float32

	// OnEditingChanged, if non-nil, is called with true when a drag
	// gesture begins and with false when it ends.
	OnEditingChanged func(editing bool)
	// OnCommit, if non-nil, is called with the final value once per
	// completed gesture, after OnEditingChanged reported false. It is
	// not called for cancelled gestures.
	OnCommit func(value float32)

	dragging   bool
	pid        pointer.ID
	pressX     float32
	startPos   float32
	startValue float32

	pos     float32 // thumb offset normalized to [0, 1]
	length  float32 // thumb travel in pixels, track width minus thumb width
	changed bool
}

// Layout processes events and registers the hit area. thumbWidth is the
// thumb extent in pixels; the thumb travels over whatever width is left
// once the thumb is subtracted. The value is derived from the thumb
// offset as min + (max-min)*offset/travel, rounded to the nearest
// multiple of step and clamped to [min, max]. The ends of the travel
// produce exactly min and max whether or not step divides the range.
func (f *Float) Layout(gtx layout.Context, thumbWidth int, min, max, step float32) layout.Dimensions {
	size := gtx.Constraints.Min
	f.length = float32(size.X - thumbWidth)
	if f.length < 0 {
		f.length = 0
	}

	for _, evt := range gtx.Events(f) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			if f.dragging {
				break
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonLeft {
				break
			}
			f.dragging = true
			f.pid = e.PointerID
			f.pressX = e.Position.X
			f.startPos = f.pos
			f.startValue = f.Value
			f.editingChanged(true)
		case pointer.Drag:
			if !f.dragging || e.PointerID != f.pid {
				break
			}
			if f.length <= 0 {
				break
			}
			offset := f.startPos*f.length + e.Position.X - f.pressX
			if offset < 0 {
				offset = 0
			} else if offset > f.length {
				offset = f.length
			}
			f.pos = offset / f.length
			// The ends of the track map to the exact bounds
			// regardless of step.
			var v float32
			switch {
			case offset == 0:
				v = min
			case offset == f.length:
				v = max
			default:
				v = quantize(min+(max-min)*f.pos, step)
			}
			f.setValue(v, min, max)
		case pointer.Release:
			if !f.dragging || e.PointerID != f.pid {
				break
			}
			f.dragging = false
			f.editingChanged(false)
			if f.OnCommit != nil {
				f.OnCommit(f.Value)
			}
		case pointer.Cancel:
			if !f.dragging {
				break
			}
			f.dragging = false
			f.setValue(f.startValue, min, max)
			f.editingChanged(false)
		}
	}

	if !f.dragging && min != max {
		f.pos = (f.Value - min) / (max - min)
	}
	// Unconditionally call setValue in case min, max, or Value changed.
	f.setValue(f.Value, min, max)

	if f.pos < 0 {
		f.pos = 0
	} else if f.pos > 1 {
		f.pos = 1
	}

	margin := thumbWidth / 2
	defer op.Push(gtx.Ops).Pop()
	rect := image.Rectangle{Max: size}
	rect.Min.X -= margin
	rect.Max.X += margin
	pointer.Rect(rect).Add(gtx.Ops)
	pointer.InputOp{
		Tag:   f,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)

	return layout.Dimensions{Size: size}
}

func (f *Float) setValue(value, min, max float32) {
	if min > max {
		min, max = max, min
	}
	if value < min {
		value = min
	} else if value > max {
		value = max
	}
	if f.Value != value {
		f.Value = value
		f.changed = true
	}
}

func (f *Float) editingChanged(editing bool) {
	if f.OnEditingChanged != nil {
		f.OnEditingChanged(editing)
	}
}

// quantize rounds v to the nearest multiple of step. A non-positive
// step leaves v untouched.
func quantize(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return float32(math.Round(float64(v/step))) * step
}

// Pos reports the thumb offset in pixels.
func (f *Float) Pos() float32 {
	return f.pos * f.length
}

// Percentage reports how far the value sits in the range, from 0 at
// min to 1 at max. An empty range reports 0.
func (f *Float) Percentage(min, max float32) float32 {
	if !(min < max) {
		return 0
	}
	p := (f.Value - min) / (max - min)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return p
}

// Dragging reports whether a drag gesture is in progress.
func (f *Float) Dragging() bool {
	return f.dragging
}

// Changed reports whether the value has changed since
// the last call to Changed.
func (f *Float) Changed() bool {
	changed := f.changed
	f.changed = false
	return changed
}
