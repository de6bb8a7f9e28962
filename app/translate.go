// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"stagekit.org/f32"
	"stagekit.org/io/event"
	"stagekit.org/io/key"
	"stagekit.org/io/pointer"
)

// TranslateMotion maps a native motion record to a canonical event.
// It returns false for actions this backend does not understand;
// such records are skipped, not errors.
//
// The button index is hard-coded to 1: the native records carry no
// pointer identity this backend interprets, so simultaneous touches
// are collapsed onto the primary button. Known limitation.
func TranslateMotion(rec MotionRecord, stage event.Tag, device pointer.ID) (event.Event, bool) {
	switch rec.Action & MotionActionMask {
	case MotionDown:
		return pointer.ButtonEvent{
			Kind:       pointer.Press,
			Time:       rec.Time,
			Position:   f32.Pt(rec.X, rec.Y),
			Button:     1,
			ClickCount: 1,
			Modifiers:  key.Modifiers(rec.Meta),
			Device:     device,
			Stage:      stage,
		}, true
	case MotionUp:
		return pointer.ButtonEvent{
			Kind:       pointer.Release,
			Time:       rec.Time,
			Position:   f32.Pt(rec.X, rec.Y),
			Button:     1,
			ClickCount: 1,
			Modifiers:  key.Modifiers(rec.Meta),
			Device:     device,
			Stage:      stage,
		}, true
	case MotionMove:
		return pointer.MotionEvent{
			Time:     rec.Time,
			Position: f32.Pt(rec.X, rec.Y),
			// Touch screens report no held button during moves;
			// pretend the primary button is down so drags work.
			Modifiers: key.Modifiers(rec.Meta) | key.ModButton1,
			Device:    device,
			Stage:     stage,
		}, true
	default:
		return nil, false
	}
}

// TranslateKey maps a native key record to a canonical event. A
// virtual key-down is treated as a plain press; no synthetic release
// follows it. Unknown states return false.
func TranslateKey(rec KeyRecord, stage event.Tag) (event.Event, bool) {
	var state key.State
	switch rec.State {
	case KeyStateUp:
		state = key.Release
	case KeyStateDown, KeyStateVirtual:
		state = key.Press
	default:
		return nil, false
	}
	return key.Event{
		State:     state,
		Time:      rec.Time,
		Keycode:   rec.Keycode,
		Keysym:    rec.Keysym,
		Modifiers: key.Modifiers(rec.Meta),
		Stage:     stage,
	}, true
}

// HandleMotion translates rec and queues the result. Unrecognized
// actions are logged and dropped.
func (b *Backend) HandleMotion(rec MotionRecord) {
	e, ok := TranslateMotion(rec, b.stageTag(), b.device)
	if !ok {
		b.log.Debug("unhandled motion action", "action", int32(rec.Action))
		return
	}
	b.PushEvent(e)
}

// HandleKey translates rec and queues the result. Unrecognized key
// states are logged and dropped.
func (b *Backend) HandleKey(rec KeyRecord) {
	e, ok := TranslateKey(rec, b.stageTag())
	if !ok {
		b.log.Debug("unhandled key state", "state", int32(rec.State))
		return
	}
	b.PushEvent(e)
}
