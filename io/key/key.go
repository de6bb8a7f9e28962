// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements canonical key events.
package key

import (
	"strings"

	"stagekit.org/io/event"
)

// An Event is generated when a key changes state.
type Event struct {
	// State is the state of the key when the event was fired.
	State State
	// Time is the platform timestamp in milliseconds, copied
	// verbatim from the native record.
	Time uint32
	// Keycode is the hardware keycode.
	Keycode uint16
	// Keysym is the key symbol, in the X keysym encoding.
	Keysym uint32
	// Modifiers is the set of active modifiers when the key
	// changed state.
	Modifiers Modifiers
	// Stage is the stage the event is directed at.
	Stage event.Tag
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers is a set of active modifier keys and pressed buttons.
type Modifiers uint32

const (
	// ModShift is the shift modifier key.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the ctrl modifier key.
	ModCtrl
	// ModAlt is the alt modifier key.
	ModAlt
	// ModSuper is the "logo" modifier key.
	ModSuper
	// ModButton1 is the primary pointer button, reported held
	// during touch motion.
	ModButton1
	// ModButton2 is the middle pointer button.
	ModButton2
	// ModButton3 is the secondary pointer button.
	ModButton3
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// When returns the event timestamp.
func (e Event) When() uint32 {
	return e.Time
}

// Rune returns the Unicode character for the event's keysym, or 0 if
// the keysym has no character.
func (e Event) Rune() rune {
	return SymToRune(e.Keysym)
}

// Mods returns the active modifiers as Modifiers bits.
func (e Event) Mods() uint32 {
	return uint32(e.Modifiers)
}

// EventKind returns the kind name reported by event.KindOf.
func (e Event) EventKind() string {
	return "Key" + e.State.String()
}

func (Event) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	if m.Contain(ModButton1) {
		strs = append(strs, "Button1")
	}
	if m.Contain(ModButton2) {
		strs = append(strs, "Button2")
	}
	if m.Contain(ModButton3) {
		strs = append(strs, "Button3")
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
