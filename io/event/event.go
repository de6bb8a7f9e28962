// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types common to all canonical events.
package event

import (
	"fmt"

	"stagekit.org/f32"
)

// Tag is a stable identifier for an external collaborator referenced
// by an event, such as the stage an event is directed at. Events hold
// tags weakly: the referenced object must outlive every queued event
// that mentions it.
type Tag interface{}

// Event is the marker interface for canonical events. Each event kind
// is its own concrete type; a type switch over Event is the tag
// dispatch, so a field of one kind can never be read through another.
type Event interface {
	ImplementsEvent()
}

// CurrentTime is the timestamp reported for events that carry no
// time of their own.
const CurrentTime uint32 = 0

// TimeOf returns the timestamp of e, or CurrentTime if e has none.
func TimeOf(e Event) uint32 {
	if t, ok := e.(interface{ When() uint32 }); ok {
		return t.When()
	}
	return CurrentTime
}

// Coords returns the pointer position of e. The second return value
// reports whether e carries a position at all; key and lifecycle
// events do not.
func Coords(e Event) (f32.Point, bool) {
	if c, ok := e.(interface{ At() f32.Point }); ok {
		return c.At(), true
	}
	return f32.Point{}, false
}

// ModifiersOf returns the modifier bitmask active when e was fired,
// or zero if e carries no modifier state. The bits are those of
// key.Modifiers.
func ModifiersOf(e Event) uint32 {
	if m, ok := e.(interface{ Mods() uint32 }); ok {
		return m.Mods()
	}
	return 0
}

// KindOf returns a short name for the kind of e, suitable for logs.
func KindOf(e Event) string {
	if k, ok := e.(interface{ EventKind() string }); ok {
		return k.EventKind()
	}
	return fmt.Sprintf("%T", e)
}
