// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture synthesizes higher level gestures from sequences of
canonical events. A Clicker watches successive button presses and
emits synthetic double and triple press events when they fall within
the configured time and distance thresholds.
*/
package gesture

import (
	"stagekit.org/f32"
	"stagekit.org/io/event"
	"stagekit.org/io/pointer"
)

// noButton marks an empty press slot.
const noButton = -1

// press is one remembered button press.
type press struct {
	time   uint32
	button int
	pos    f32.Point
}

// Clicker detects double and triple click sequences. It keeps the
// last two presses: slot 0 is the most recent, slot 1 the one
// before. A Clicker belongs to a single backend and must only be
// used from its thread.
type Clicker struct {
	// Interval is the double-click time window in milliseconds.
	Interval uint32
	// Distance is the maximum per-axis distance between presses of
	// one click sequence, in stage units.
	Distance float32

	slots [2]press
}

// NewClicker returns a Clicker with both press slots empty.
func NewClicker(interval uint32, distance float32) *Clicker {
	c := &Clicker{Interval: interval, Distance: distance}
	c.slots[0].button = noButton
	c.slots[1].button = noButton
	return c
}

// Press feeds a button press into the detector. Synthetic events are
// delivered through put, the same injection path used for native
// events, as a copy of e with the kind overridden.
//
// A third press within twice the interval of the press before last
// makes a triple and empties both slots, so a fourth press starts
// over. Otherwise a press within one interval of the last press
// makes a double and shifts the slots. Any other press only becomes
// the new slot 0.
func (c *Clicker) Press(e pointer.ButtonEvent, put func(event.Event)) {
	switch {
	case e.Time < c.slots[1].time+2*c.Interval &&
		e.Button == c.slots[1].button &&
		e.Position.Within(c.slots[1].pos, c.Distance):
		c.synthesize(e, pointer.TriplePress, put)
		c.slots[0] = press{button: noButton}
		c.slots[1] = press{button: noButton}
	case e.Time < c.slots[0].time+c.Interval &&
		e.Button == c.slots[0].button &&
		e.Position.Within(c.slots[0].pos, c.Distance):
		c.synthesize(e, pointer.DoublePress, put)
		c.slots[1] = c.slots[0]
		c.slots[0] = press{time: e.Time, button: e.Button, pos: e.Position}
	default:
		c.slots[1] = press{button: noButton}
		c.slots[0] = press{time: e.Time, button: e.Button, pos: e.Position}
	}
}

func (c *Clicker) synthesize(e pointer.ButtonEvent, kind pointer.ButtonKind, put func(event.Event)) {
	synth := e
	synth.Kind = kind
	put(synth)
}
