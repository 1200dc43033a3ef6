// SPDX-License-Identifier: Unlicense OR MIT

/*
Package slider implements a customizable horizontal slider control.

The control is split in two parts: the stateful Float, which owns the
bound value and the drag gesture, and the stateless Style, which draws
it. The three visual elements of Style are pluggable, so hosts can
replace the track, the fill or the thumb while keeping the
drag-to-value logic.

A minimal slider bound to a float value:

	var f slider.Float
	f.OnCommit = func(v float32) {
		fmt.Println("picked", v)
	}

	st := slider.Slider(th, &f, 0, 100)
	st.Step = 5
	st.Layout(gtx)

While the thumb is dragged the value is updated live, quantized to
Step and clamped to the bounds. OnEditingChanged reports the start and
end of each gesture, OnCommit the final value.
*/
package slider
