// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

package evdev

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// A Reader streams decoded records from an evdev device node such as
// /dev/input/event0.
type Reader struct {
	fd  int
	buf []byte
}

// Open opens an evdev device for reading.
func Open(path string) (*Reader, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", path, err)
	}
	return &Reader{fd: fd, buf: make([]byte, 64*RecordSize64)}, nil
}

// Close releases the device.
func (r *Reader) Close() error {
	return unix.Close(r.fd)
}

// ReadAll reads records until ctx is cancelled or the device fails,
// delivering each key record to emit. Non-key records are skipped.
// Cancellation is only observed between reads; a read blocked on an
// idle device returns when the device next delivers data or the
// Reader is closed from another goroutine.
func (r *Reader) ReadAll(ctx context.Context, emit func(Record)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := unix.Read(r.fd, r.buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("evdev: read: %w", err)
		}
		for off := 0; off+RecordSize64 <= n; off += RecordSize64 {
			rec, err := Decode(r.buf[off:], RecordSize64)
			if err != nil {
				return err
			}
			if rec.Type != EvKey {
				continue
			}
			emit(rec)
		}
	}
}
