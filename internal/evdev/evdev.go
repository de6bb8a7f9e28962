// SPDX-License-Identifier: Unlicense OR MIT

/*
Package evdev decodes the Linux input_event stream into
platform-native records for the backend translators. Only key events
are produced; absolute-axis plumbing belongs to the compositor, not
this core.
*/
package evdev

import (
	"encoding/binary"
	"errors"
)

// Event type and key state values from linux/input-event-codes.h.
const (
	EvSyn = 0x00
	EvKey = 0x01
	EvRel = 0x02
	EvAbs = 0x03
)

const (
	// KeyUp, KeyDown and KeyHold are the value field of an EvKey
	// record.
	KeyUp   = 0
	KeyDown = 1
	KeyHold = 2
)

// RecordSize64 is the size of an input_event with a 64-bit timeval.
// 32-bit kernels emit 16-byte records instead.
const (
	RecordSize64 = 24
	RecordSize32 = 16
)

// A Record is one decoded input_event.
type Record struct {
	// Sec and Usec are the kernel timestamp.
	Sec  int64
	Usec int64
	// Type is one of the Ev constants.
	Type uint16
	// Code is the key scan code for EvKey records.
	Code uint16
	// Value is the key state for EvKey records.
	Value int32
}

// ErrShortRecord is reported when a buffer holds less than one
// input_event.
var ErrShortRecord = errors.New("evdev: short record")

// Decode reads one little-endian input_event from buf. size selects
// the timeval width (RecordSize64 or RecordSize32). Big-endian
// kernels are not supported.
func Decode(buf []byte, size int) (Record, error) {
	if len(buf) < size {
		return Record{}, ErrShortRecord
	}
	var r Record
	switch size {
	case RecordSize64:
		r.Sec = int64(binary.LittleEndian.Uint64(buf[0:]))
		r.Usec = int64(binary.LittleEndian.Uint64(buf[8:]))
		r.Type = binary.LittleEndian.Uint16(buf[16:])
		r.Code = binary.LittleEndian.Uint16(buf[18:])
		r.Value = int32(binary.LittleEndian.Uint32(buf[20:]))
	case RecordSize32:
		r.Sec = int64(int32(binary.LittleEndian.Uint32(buf[0:])))
		r.Usec = int64(int32(binary.LittleEndian.Uint32(buf[4:])))
		r.Type = binary.LittleEndian.Uint16(buf[8:])
		r.Code = binary.LittleEndian.Uint16(buf[10:])
		r.Value = int32(binary.LittleEndian.Uint32(buf[12:]))
	default:
		return Record{}, ErrShortRecord
	}
	return r, nil
}

// Millis returns the record timestamp in milliseconds, the unit of
// canonical event timestamps.
func (r Record) Millis() uint32 {
	return uint32(r.Sec*1000 + r.Usec/1000)
}
