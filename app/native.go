// SPDX-License-Identifier: Unlicense OR MIT

package app

// A MotionRecord is a platform-native pointer input record.
type MotionRecord struct {
	// Action is the native action enumerant. Only the bits covered
	// by MotionActionMask select the action.
	Action MotionAction
	// Time is the native timestamp in milliseconds.
	Time uint32
	// X, Y are the native pointer coordinates.
	X, Y float32
	// Meta is the native modifier bitmask, carried verbatim.
	Meta uint32
}

// A KeyRecord is a platform-native key input record.
type KeyRecord struct {
	// State is the native key state enumerant.
	State KeyState
	// Time is the native timestamp in milliseconds.
	Time uint32
	// Keycode is the hardware keycode.
	Keycode uint16
	// Keysym is the key symbol, if the platform reports one.
	Keysym uint32
	// Meta is the native modifier bitmask, carried verbatim.
	Meta uint32
}

// MotionAction is the action of a MotionRecord.
type MotionAction int32

const (
	// MotionDown is a touch or button going down.
	MotionDown MotionAction = 0
	// MotionUp is a touch or button going up.
	MotionUp MotionAction = 1
	// MotionMove is pointer movement.
	MotionMove MotionAction = 2

	// MotionActionMask selects the action bits of a native action
	// value; the upper bits carry per-pointer indices this backend
	// does not interpret.
	MotionActionMask MotionAction = 0xff
)

// KeyState is the state of a KeyRecord.
type KeyState int32

const (
	// KeyStateUp is a released key.
	KeyStateUp KeyState = 0
	// KeyStateDown is a pressed key.
	KeyStateDown KeyState = 1
	// KeyStateVirtual is a key pressed virtually, for example by an
	// on-screen keyboard. It is treated as KeyStateDown; no
	// synthetic release is generated.
	KeyStateVirtual KeyState = 2
)

// Command is a platform lifecycle command.
type Command uint8

const (
	// CmdInitWindow reports that the native window is ready for use.
	CmdInitWindow Command = iota
	// CmdTermWindow reports that the native window is being hidden
	// or closed.
	CmdTermWindow
	// CmdWindowResized reports a change of window dimensions.
	CmdWindowResized
	// CmdRedrawNeeded asks for the window contents to be redrawn.
	CmdRedrawNeeded
	// CmdContentRectChanged reports a change of the content
	// rectangle.
	CmdContentRectChanged
	// CmdGainedFocus and CmdLostFocus report input focus changes.
	CmdGainedFocus
	CmdLostFocus
	// CmdStart, CmdStop, CmdPause and CmdDestroy report activity
	// lifecycle changes.
	CmdStart
	CmdStop
	CmdPause
	CmdDestroy
)

// A LifecycleCommand pairs a Command with the native window it
// concerns, if any.
type LifecycleCommand struct {
	Cmd Command
	// Window is the native window handle, or nil when the platform
	// has none to offer.
	Window NativeWindow
}

// NativeWindow is the narrow view of a platform window needed by the
// dispatcher.
type NativeWindow interface {
	// Size returns the current window dimensions in pixels.
	Size() (width, height int32)
}

// Stage is the root of the rendered scene graph, sized to match the
// native window. It is implemented by the scene-graph collaborator.
type Stage interface {
	// Size returns the stage dimensions.
	Size() (width, height int32)
	// Resize resizes the rendering surface.
	Resize(width, height int32)
	// RequestRelayout schedules a re-layout of the scene graph.
	RequestRelayout()
}

func (c Command) String() string {
	switch c {
	case CmdInitWindow:
		return "InitWindow"
	case CmdTermWindow:
		return "TermWindow"
	case CmdWindowResized:
		return "WindowResized"
	case CmdRedrawNeeded:
		return "RedrawNeeded"
	case CmdContentRectChanged:
		return "ContentRectChanged"
	case CmdGainedFocus:
		return "GainedFocus"
	case CmdLostFocus:
		return "LostFocus"
	case CmdStart:
		return "Start"
	case CmdStop:
		return "Stop"
	case CmdPause:
		return "Pause"
	case CmdDestroy:
		return "Destroy"
	default:
		panic("unknown Command")
	}
}
