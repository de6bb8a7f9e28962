// SPDX-License-Identifier: Unlicense OR MIT

package evdev

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecode64(t *testing.T) {
	buf := make([]byte, RecordSize64)
	binary.LittleEndian.PutUint64(buf[0:], 12)     // sec
	binary.LittleEndian.PutUint64(buf[8:], 345678) // usec
	binary.LittleEndian.PutUint16(buf[16:], EvKey)
	binary.LittleEndian.PutUint16(buf[18:], 30) // KEY_A
	binary.LittleEndian.PutUint32(buf[20:], KeyDown)

	rec, err := Decode(buf, RecordSize64)
	if err != nil {
		t.Fatal(err)
	}
	want := Record{Sec: 12, Usec: 345678, Type: EvKey, Code: 30, Value: KeyDown}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
	if got := rec.Millis(); got != 12345 {
		t.Errorf("Millis = %d, want 12345", got)
	}
}

func TestDecode32(t *testing.T) {
	buf := make([]byte, RecordSize32)
	binary.LittleEndian.PutUint32(buf[0:], 1)
	binary.LittleEndian.PutUint32(buf[4:], 2000)
	binary.LittleEndian.PutUint16(buf[8:], EvKey)
	binary.LittleEndian.PutUint16(buf[10:], 17) // KEY_W
	binary.LittleEndian.PutUint32(buf[12:], KeyUp)

	rec, err := Decode(buf, RecordSize32)
	if err != nil {
		t.Fatal(err)
	}
	want := Record{Sec: 1, Usec: 2000, Type: EvKey, Code: 17, Value: KeyUp}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
}

func TestDecodeShort(t *testing.T) {
	if _, err := Decode(make([]byte, 10), RecordSize64); !errors.Is(err, ErrShortRecord) {
		t.Errorf("got %v, want ErrShortRecord", err)
	}
	if _, err := Decode(make([]byte, 64), 20); !errors.Is(err, ErrShortRecord) {
		t.Errorf("odd record size: got %v, want ErrShortRecord", err)
	}
}
