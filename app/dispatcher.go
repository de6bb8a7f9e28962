// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"

	"stagekit.org/io/system"
)

// Action is what the host application must do after a lifecycle
// command has been dispatched.
type Action uint8

const (
	// ActionNone requires nothing of the host.
	ActionNone Action = iota
	// ActionShutdown requires the host to stop its run loop and
	// exit. Termination on window loss is policy, not a failure;
	// the host must not retry or suppress it.
	ActionShutdown
)

// ErrWindowGone is returned by WaitForWindow when the window is
// terminated before it ever became usable.
var ErrWindowGone = errors.New("app: window gone before becoming usable")

// HandleCommand dispatches one platform lifecycle command.
//
// Commands that need a native window while none is present are
// not-yet-ready no-ops. CmdTermWindow either wakes a pending
// WaitForWindow or demands shutdown; every other command returns
// ActionNone.
func (b *Backend) HandleCommand(cmd LifecycleCommand) Action {
	b.log.Info("command", "cmd", cmd.Cmd.String())
	switch cmd.Cmd {
	case CmdInitWindow:
		if cmd.Window == nil {
			return ActionNone
		}
		accepted := true
		if b.ready != nil {
			accepted = b.ready()
		}
		b.winMu.Lock()
		b.win = cmd.Window
		if accepted {
			b.haveWindow = true
		}
		b.wake()
		b.winMu.Unlock()
		return ActionNone

	case CmdTermWindow:
		b.winMu.Lock()
		waiting := b.waiter != nil
		b.win = nil
		b.haveWindow = false
		b.wake()
		b.winMu.Unlock()
		if waiting {
			return ActionNone
		}
		b.PushEvent(system.DestroyEvent{})
		return ActionShutdown

	case CmdWindowResized, CmdRedrawNeeded:
		b.resizeStage(cmd.Window)
		return ActionNone

	case CmdGainedFocus, CmdLostFocus:
		b.PushEvent(system.StageEvent{
			Focused: cmd.Cmd == CmdGainedFocus,
			Stage:   b.stageTag(),
		})
		return ActionNone

	default:
		// Observability only.
		return ActionNone
	}
}

// resizeStage matches the stage to the native window dimensions. A
// missing window or stage means not-yet-ready, never an error.
func (b *Backend) resizeStage(win NativeWindow) {
	if win == nil || b.stage == nil {
		return
	}
	width, height := win.Size()
	sw, sh := b.stage.Size()
	if width == sw && height == sh {
		return
	}
	b.log.Info("resizing stage", "width", width, "height", height)
	b.stage.Resize(width, height)
	b.stage.RequestRelayout()
	b.PushEvent(system.ResizeEvent{Width: width, Height: height, Stage: b.stageTag()})
}

// WaitForWindow blocks until a usable window arrives or the window
// is terminated first, in which case it returns ErrWindowGone.
// Cancel or time-limit the wait through ctx; without a deadline it
// can block indefinitely.
func (b *Backend) WaitForWindow(ctx context.Context) error {
	b.winMu.Lock()
	if b.haveWindow {
		b.winMu.Unlock()
		return nil
	}
	if b.waiter == nil {
		b.waiter = make(chan struct{})
	}
	ch := b.waiter
	b.winMu.Unlock()

	b.log.Info("waiting for the window")
	select {
	case <-ch:
		b.winMu.Lock()
		have := b.haveWindow
		b.winMu.Unlock()
		if !have {
			return ErrWindowGone
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HaveWindow reports whether a usable window has been accepted.
func (b *Backend) HaveWindow() bool {
	b.winMu.Lock()
	defer b.winMu.Unlock()
	return b.haveWindow
}

func (b *Backend) waiting() bool {
	b.winMu.Lock()
	defer b.winMu.Unlock()
	return b.waiter != nil
}

// wake releases a pending WaitForWindow. Callers hold winMu.
func (b *Backend) wake() {
	if b.waiter != nil {
		close(b.waiter)
		b.waiter = nil
	}
}
