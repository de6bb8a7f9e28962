// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements canonical pointer events.
package pointer

import (
	"stagekit.org/f32"
	"stagekit.org/io/event"
	"stagekit.org/io/key"
)

// A ButtonEvent is generated when a pointer button changes state,
// either directly by the platform or synthesized from a click
// sequence.
type ButtonEvent struct {
	Kind ButtonKind
	// Time is the platform timestamp in milliseconds.
	Time uint32
	// Position is the pointer position in stage coordinates.
	Position f32.Point
	// Button is the button index, starting at 1 for the primary
	// button.
	Button int
	// ClickCount is the number of presses reported by the platform
	// for this event.
	ClickCount int
	// Modifiers is the set of active modifiers.
	Modifiers key.Modifiers
	// Device identifies the originating pointer device.
	Device ID
	// Stage is the stage the event is directed at.
	Stage event.Tag
}

// A MotionEvent is generated when a pointer moves.
type MotionEvent struct {
	Time      uint32
	Position  f32.Point
	Modifiers key.Modifiers
	Device    ID
	Stage     event.Tag
}

// A ScrollEvent is generated by a scroll wheel or gesture.
type ScrollEvent struct {
	Time      uint32
	Position  f32.Point
	Direction ScrollDirection
	Modifiers key.Modifiers
	Device    ID
	Stage     event.Tag
}

// ID identifies a pointer device.
type ID uint16

// CoreDevice is the default pointer device.
const CoreDevice ID = 0

// ButtonKind is the kind of a ButtonEvent.
type ButtonKind uint8

const (
	// Press of a button.
	Press ButtonKind = iota
	// Release of a button.
	Release
	// DoublePress is a synthetic second press within the
	// double-click window.
	DoublePress
	// TriplePress is a synthetic third press within twice the
	// double-click window.
	TriplePress
)

// ScrollDirection is the direction of a ScrollEvent.
type ScrollDirection uint8

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)

// When returns the event timestamp.
func (e ButtonEvent) When() uint32 { return e.Time }
func (e MotionEvent) When() uint32 { return e.Time }
func (e ScrollEvent) When() uint32 { return e.Time }

// At returns the event position.
func (e ButtonEvent) At() f32.Point { return e.Position }
func (e MotionEvent) At() f32.Point { return e.Position }
func (e ScrollEvent) At() f32.Point { return e.Position }

// Mods returns the active modifiers as key.Modifiers bits.
func (e ButtonEvent) Mods() uint32 { return uint32(e.Modifiers) }
func (e MotionEvent) Mods() uint32 { return uint32(e.Modifiers) }
func (e ScrollEvent) Mods() uint32 { return uint32(e.Modifiers) }

// EventKind returns the kind name reported by event.KindOf.
func (e ButtonEvent) EventKind() string {
	switch e.Kind {
	case Press:
		return "ButtonPress"
	case Release:
		return "ButtonRelease"
	default:
		return e.Kind.String()
	}
}

func (MotionEvent) EventKind() string { return "Motion" }
func (ScrollEvent) EventKind() string { return "Scroll" }

func (ButtonEvent) ImplementsEvent() {}
func (MotionEvent) ImplementsEvent() {}
func (ScrollEvent) ImplementsEvent() {}

func (k ButtonKind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case DoublePress:
		return "DoublePress"
	case TriplePress:
		return "TriplePress"
	default:
		panic("unknown ButtonKind")
	}
}

func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "Up"
	case ScrollDown:
		return "Down"
	case ScrollLeft:
		return "Left"
	case ScrollRight:
		return "Right"
	default:
		panic("unknown ScrollDirection")
	}
}
