// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

import "stagekit.org/io/event"

// A ResizeEvent is generated when the native window dimensions no
// longer match the stage.
type ResizeEvent struct {
	// Width and Height are the new native window dimensions.
	Width, Height int32
	// Stage is the stage that was resized.
	Stage event.Tag
}

// A StageEvent is generated when the stage gains or loses input
// focus. It carries no further state; applications that ignore it
// lose nothing but the notification.
type StageEvent struct {
	// Focused reports whether the stage now holds input focus.
	Focused bool
	// Stage is the stage whose state changed.
	Stage event.Tag
}

// DestroyEvent is the last event queued before a backend shuts
// down.
type DestroyEvent struct {
	// Err is nil for an orderly shutdown. If the backend is torn
	// down prematurely, Err is the cause.
	Err error
}

func (ResizeEvent) ImplementsEvent()  {}
func (StageEvent) ImplementsEvent()   {}
func (DestroyEvent) ImplementsEvent() {}

// EventKind returns the kind name reported by event.KindOf.
func (ResizeEvent) EventKind() string  { return "Resize" }
func (DestroyEvent) EventKind() string { return "Destroy" }

func (e StageEvent) EventKind() string {
	if e.Focused {
		return "StageFocusIn"
	}
	return "StageFocusOut"
}
