// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"stagekit.org/io/event"
	"stagekit.org/io/pointer"
)

func buttonAt(time uint32) pointer.ButtonEvent {
	return pointer.ButtonEvent{Kind: pointer.Release, Time: time, Button: 1}
}

func TestQueueFIFO(t *testing.T) {
	b := New(DefaultConfig(), nil)
	for i := uint32(0); i < 100; i++ {
		b.PushEvent(buttonAt(i))
	}
	for i := uint32(0); i < 100; i++ {
		e := b.PopEvent()
		if e == nil {
			t.Fatalf("queue empty after %d pops, want 100", i)
		}
		if got := event.TimeOf(e); got != i {
			t.Fatalf("pop %d returned event %d", i, got)
		}
	}
	if b.HasPending() {
		t.Error("queue reports pending events after draining")
	}
	if e := b.PopEvent(); e != nil {
		t.Errorf("pop on empty queue returned %v", e)
	}
}

func TestQueueInterleaved(t *testing.T) {
	b := New(DefaultConfig(), nil)
	next := uint32(0)
	expect := uint32(0)
	// Alternate bursts of pushes and pops; order must hold across
	// every interleaving.
	for _, burst := range []struct{ push, pop int }{
		{3, 1}, {1, 2}, {5, 4}, {2, 4},
	} {
		for i := 0; i < burst.push; i++ {
			b.PushEvent(buttonAt(next))
			next++
		}
		for i := 0; i < burst.pop; i++ {
			e := b.PopEvent()
			if e == nil {
				t.Fatalf("queue empty, want event %d", expect)
			}
			if got := event.TimeOf(e); got != expect {
				t.Fatalf("popped event %d, want %d", got, expect)
			}
			expect++
		}
	}
	if b.HasPending() {
		t.Error("queue reports pending events after balanced bursts")
	}
}

func TestQueuePeekDoesNotMutate(t *testing.T) {
	b := New(DefaultConfig(), nil)
	if e := b.PeekEvent(); e != nil {
		t.Fatalf("peek on empty queue returned %v", e)
	}
	b.PushEvent(buttonAt(1))
	b.PushEvent(buttonAt(2))
	for i := 0; i < 3; i++ {
		if got := event.TimeOf(b.PeekEvent()); got != 1 {
			t.Fatalf("peek %d returned event %d, want 1", i, got)
		}
	}
	if got := event.TimeOf(b.PopEvent()); got != 1 {
		t.Errorf("pop after peeks returned event %d, want 1", got)
	}
	if got := event.TimeOf(b.PeekEvent()); got != 2 {
		t.Errorf("peek after pop returned event %d, want 2", got)
	}
}

func TestQueueGrowth(t *testing.T) {
	var q eventQueue
	for i := uint32(0); i < 3; i++ {
		q.push(buttonAt(i))
	}
	// Pop one, push more to force wrap-around and growth with a
	// non-zero head.
	if got := event.TimeOf(q.pop()); got != 0 {
		t.Fatalf("popped event %d, want 0", got)
	}
	for i := uint32(3); i < 20; i++ {
		q.push(buttonAt(i))
	}
	for i := uint32(1); i < 20; i++ {
		if got := event.TimeOf(q.pop()); got != i {
			t.Fatalf("popped event %d, want %d", got, i)
		}
	}
	if q.pending() {
		t.Error("queue reports pending events after draining")
	}
}
