// SPDX-License-Identifier: Unlicense OR MIT

package app

import "stagekit.org/internal/evdev"

// KeyRecordFromEvdev converts a decoded evdev key record into a
// native key record for TranslateKey. Auto-repeat is reported as a
// plain key down. Non-key records return false.
func KeyRecordFromEvdev(rec evdev.Record) (KeyRecord, bool) {
	if rec.Type != evdev.EvKey {
		return KeyRecord{}, false
	}
	var state KeyState
	switch rec.Value {
	case evdev.KeyUp:
		state = KeyStateUp
	case evdev.KeyDown, evdev.KeyHold:
		state = KeyStateDown
	default:
		return KeyRecord{}, false
	}
	return KeyRecord{
		State:   state,
		Time:    rec.Millis(),
		Keycode: rec.Code,
	}, true
}
