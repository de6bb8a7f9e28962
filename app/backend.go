// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"io"
	"log/slog"
	"sync"

	"stagekit.org/gesture"
	"stagekit.org/io/event"
	"stagekit.org/io/pointer"
)

// Backend is the per-platform context owning the event queue and the
// click-detection state. Construct it with New and keep all access,
// apart from WaitForWindow, on one goroutine.
type Backend struct {
	cfg     Config
	log     *slog.Logger
	queue   eventQueue
	clicker *gesture.Clicker
	// registry tracks live events when debug tracking is on.
	registry *event.Registry

	stage  Stage
	device pointer.ID
	ready  func() bool

	// winMu guards the window-wait state, the only part of the
	// backend touched from more than one goroutine.
	winMu      sync.Mutex
	win        NativeWindow
	haveWindow bool
	waiter     chan struct{}
}

// New returns a backend configured by cfg. A nil logger discards all
// output.
func New(cfg Config, log *slog.Logger) *Backend {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	b := &Backend{
		cfg:     cfg,
		log:     log,
		clicker: gesture.NewClicker(cfg.DoubleClick.Time, cfg.DoubleClick.Distance),
		device:  pointer.CoreDevice,
	}
	if cfg.Debug.TrackEvents {
		b.registry = event.NewRegistry()
	}
	return b
}

// SetStage sets the default stage new events are directed at. The
// backend holds the stage weakly; it must outlive every queued event.
func (b *Backend) SetStage(s Stage) {
	b.stage = s
}

// OnReady registers the handler asked whether the application layer
// is prepared to use the window. At most one handler is supported;
// without one the window is accepted unconditionally.
func (b *Backend) OnReady(f func() bool) {
	b.ready = f
}

// PushEvent appends e to the queue, taking ownership.
func (b *Backend) PushEvent(e event.Event) {
	if e == nil {
		return
	}
	if b.registry != nil {
		if err := b.registry.Track(e); err != nil {
			b.log.Warn("event track failed", "err", err)
		}
	}
	b.queue.push(e)
}

// PutEvent queues an independent copy of e. Canonical events are
// plain values, so storing e in the queue is the copy.
func (b *Backend) PutEvent(e event.Event) {
	b.PushEvent(e)
}

// PopEvent removes and returns the oldest queued event, or nil if
// the queue is empty. Unlike NextEvent it performs no click
// synthesis.
func (b *Backend) PopEvent() event.Event {
	e := b.queue.pop()
	b.release(e)
	return e
}

// PeekEvent returns the oldest queued event without removing it, or
// nil if the queue is empty.
func (b *Backend) PeekEvent() event.Event {
	return b.queue.peek()
}

// HasPending reports whether any event is queued.
func (b *Backend) HasPending() bool {
	return b.queue.pending()
}

// NextEvent removes and returns the oldest queued event. Button
// presses are fed through the click-sequence detector, which may
// queue synthetic double or triple press events behind the returned
// one.
func (b *Backend) NextEvent() event.Event {
	e := b.queue.pop()
	b.release(e)
	if be, ok := e.(pointer.ButtonEvent); ok && be.Kind == pointer.Press {
		b.clicker.Press(be, b.PushEvent)
	}
	return e
}

func (b *Backend) release(e event.Event) {
	if e == nil || b.registry == nil {
		return
	}
	if err := b.registry.Release(e); err != nil {
		b.log.Warn("event release failed", "err", err)
	}
}

// stageTag returns the default stage as an event tag, or nil when no
// stage is set.
func (b *Backend) stageTag() event.Tag {
	if b.stage == nil {
		return nil
	}
	return b.stage
}
