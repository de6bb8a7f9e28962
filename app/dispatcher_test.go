// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"stagekit.org/io/event"
	"stagekit.org/io/system"
)

type fakeStage struct {
	width, height int32
	relayouts     int
}

func (s *fakeStage) Size() (int32, int32) { return s.width, s.height }
func (s *fakeStage) Resize(w, h int32)    { s.width, s.height = w, h }
func (s *fakeStage) RequestRelayout()     { s.relayouts++ }

type fakeWindow struct {
	width, height int32
}

func (w *fakeWindow) Size() (int32, int32) { return w.width, w.height }

func TestInitWindowWithoutHandleIsNoop(t *testing.T) {
	b := New(DefaultConfig(), nil)
	if got := b.HandleCommand(LifecycleCommand{Cmd: CmdInitWindow}); got != ActionNone {
		t.Fatalf("action = %v, want ActionNone", got)
	}
	if b.HaveWindow() {
		t.Error("backend claims a window after handle-less InitWindow")
	}
}

func TestInitWindowAsksReadyHandler(t *testing.T) {
	for _, tc := range []struct {
		label    string
		accepted bool
	}{
		{label: "accepted", accepted: true},
		{label: "rejected", accepted: false},
	} {
		t.Run(tc.label, func(t *testing.T) {
			b := New(DefaultConfig(), nil)
			asked := false
			b.OnReady(func() bool {
				asked = true
				return tc.accepted
			})
			b.HandleCommand(LifecycleCommand{Cmd: CmdInitWindow, Window: &fakeWindow{}})
			if !asked {
				t.Fatal("ready handler was not asked")
			}
			if b.HaveWindow() != tc.accepted {
				t.Errorf("HaveWindow = %v, want %v", b.HaveWindow(), tc.accepted)
			}
		})
	}
}

func TestTermWindowDemandsShutdown(t *testing.T) {
	b := New(DefaultConfig(), nil)
	b.HandleCommand(LifecycleCommand{Cmd: CmdInitWindow, Window: &fakeWindow{}})
	if got := b.HandleCommand(LifecycleCommand{Cmd: CmdTermWindow}); got != ActionShutdown {
		t.Fatalf("action = %v, want ActionShutdown", got)
	}
	if _, ok := b.PopEvent().(system.DestroyEvent); !ok {
		t.Error("shutdown did not queue a DestroyEvent")
	}
}

func TestTermWindowWakesWaiterWithoutShutdown(t *testing.T) {
	b := New(DefaultConfig(), nil)
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.WaitForWindow(context.Background())
	}()
	waitUntil(t, b.waiting)

	if got := b.HandleCommand(LifecycleCommand{Cmd: CmdTermWindow}); got != ActionNone {
		t.Fatalf("action = %v, want ActionNone while a waiter is pending", got)
	}
	select {
	case err := <-errCh:
		if !errors.Is(err, ErrWindowGone) {
			t.Errorf("WaitForWindow returned %v, want ErrWindowGone", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter was not woken")
	}
}

func TestInitWindowWakesWaiter(t *testing.T) {
	b := New(DefaultConfig(), nil)
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.WaitForWindow(context.Background())
	}()
	waitUntil(t, b.waiting)

	b.HandleCommand(LifecycleCommand{Cmd: CmdInitWindow, Window: &fakeWindow{}})
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("WaitForWindow returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter was not woken")
	}
}

func TestWaitForWindowHonorsContext(t *testing.T) {
	b := New(DefaultConfig(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := b.WaitForWindow(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForWindow returned %v, want deadline exceeded", err)
	}
}

func TestWaitForWindowReturnsImmediatelyWithWindow(t *testing.T) {
	b := New(DefaultConfig(), nil)
	b.HandleCommand(LifecycleCommand{Cmd: CmdInitWindow, Window: &fakeWindow{}})
	if err := b.WaitForWindow(context.Background()); err != nil {
		t.Errorf("WaitForWindow returned %v, want nil", err)
	}
}

func TestResizeMatchesStageToWindow(t *testing.T) {
	b := New(DefaultConfig(), nil)
	stage := &fakeStage{}
	b.SetStage(stage)
	win := &fakeWindow{width: 640, height: 480}

	b.HandleCommand(LifecycleCommand{Cmd: CmdWindowResized, Window: win})
	if stage.width != 640 || stage.height != 480 {
		t.Fatalf("stage is %dx%d, want 640x480", stage.width, stage.height)
	}
	if stage.relayouts != 1 {
		t.Errorf("relayouts = %d, want 1", stage.relayouts)
	}
	re, ok := b.PopEvent().(system.ResizeEvent)
	if !ok {
		t.Fatal("resize did not queue a ResizeEvent")
	}
	if re.Width != 640 || re.Height != 480 {
		t.Errorf("ResizeEvent is %dx%d, want 640x480", re.Width, re.Height)
	}

	// Same dimensions again: nothing to do.
	b.HandleCommand(LifecycleCommand{Cmd: CmdRedrawNeeded, Window: win})
	if stage.relayouts != 1 {
		t.Errorf("relayouts = %d after no-op redraw, want 1", stage.relayouts)
	}
	if b.HasPending() {
		t.Error("no-op redraw queued an event")
	}
}

func TestResizeWithoutWindowIsNoop(t *testing.T) {
	b := New(DefaultConfig(), nil)
	stage := &fakeStage{}
	b.SetStage(stage)
	b.HandleCommand(LifecycleCommand{Cmd: CmdWindowResized})
	if stage.relayouts != 0 || b.HasPending() {
		t.Error("window-less resize was not a no-op")
	}
}

func TestFocusCommandsQueueStageEvents(t *testing.T) {
	for _, tc := range []struct {
		label   string
		cmd     Command
		focused bool
	}{
		{label: "gained", cmd: CmdGainedFocus, focused: true},
		{label: "lost", cmd: CmdLostFocus, focused: false},
	} {
		t.Run(tc.label, func(t *testing.T) {
			b := New(DefaultConfig(), nil)
			stage := &fakeStage{}
			b.SetStage(stage)
			if got := b.HandleCommand(LifecycleCommand{Cmd: tc.cmd}); got != ActionNone {
				t.Fatalf("action = %v, want ActionNone", got)
			}
			se, ok := b.PopEvent().(system.StageEvent)
			if !ok {
				t.Fatal("focus command did not queue a StageEvent")
			}
			if se.Focused != tc.focused {
				t.Errorf("Focused = %v, want %v", se.Focused, tc.focused)
			}
			if se.Stage != event.Tag(stage) {
				t.Error("StageEvent does not reference the stage")
			}
		})
	}
}

func TestObservabilityCommandsChangeNothing(t *testing.T) {
	b := New(DefaultConfig(), nil)
	for _, cmd := range []Command{
		CmdContentRectChanged,
		CmdStart, CmdStop, CmdPause, CmdDestroy,
	} {
		if got := b.HandleCommand(LifecycleCommand{Cmd: cmd}); got != ActionNone {
			t.Errorf("%s: action = %v, want ActionNone", cmd, got)
		}
	}
	if b.HasPending() || b.HaveWindow() {
		t.Error("observability-only command changed backend state")
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		time.Sleep(time.Millisecond)
	}
}
