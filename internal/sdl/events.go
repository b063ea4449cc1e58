//go:build darwin || freebsd || linux

package sdl

import "unsafe"

// Native event type identifiers.
const (
	eventQuit                 uint32 = 0x100
	eventWindow               uint32 = 0x200
	eventKeyDown              uint32 = 0x300
	eventKeyUp                uint32 = 0x301
	eventTextInput            uint32 = 0x303
	eventMouseMotion          uint32 = 0x400
	eventMouseButtonDown      uint32 = 0x401
	eventMouseButtonUp        uint32 = 0x402
	eventMouseWheel           uint32 = 0x403
	eventJoyDeviceAdded       uint32 = 0x605
	eventJoyDeviceRemoved     uint32 = 0x606
	eventControllerAxis       uint32 = 0x650
	eventControllerButtonDown uint32 = 0x651
	eventControllerButtonUp   uint32 = 0x652
	eventDropFile             uint32 = 0x1000
)

// Window sub-event identifiers (the event byte of SDL_WindowEvent).
const (
	windowEventMoved       uint8 = 4
	windowEventSizeChanged uint8 = 6
	windowEventFocusGained uint8 = 12
	windowEventFocusLost   uint8 = 13
	windowEventClose       uint8 = 14
)

// Native mouse button identifiers as carried by button events.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
	ButtonX1     uint8 = 4
	ButtonX2     uint8 = 5
)

// eventSize is sizeof(SDL_Event), fixed by the union's padding member.
const eventSize = 56

// Event is one decoded native event record.
type Event interface{ event() }

type Quit struct{}

type KeyDown struct {
	Code   Keycode
	Repeat bool
}

type KeyUp struct {
	Code Keycode
}

// TextInput carries the raw NUL-terminated UTF-8 run of a native text
// event; decoding is the consumer's job.
type TextInput struct {
	Text [32]byte
}

type MouseMotion struct{ X, Y int32 }

type MouseButtonDown struct{ Button uint8 }

type MouseButtonUp struct{ Button uint8 }

// MouseWheel counts whole notches; right and away-from-user are positive.
type MouseWheel struct{ X, Y int32 }

type JoyDeviceAdded struct{ Index int32 }

type JoyDeviceRemoved struct{ Instance int32 }

// ControllerAxis is a gamepad axis change stamped with the native event
// timestamp.
type ControllerAxis struct {
	Which     int32
	Axis      uint8
	Value     int16
	Timestamp uint32
}

// ControllerButton is a gamepad button change stamped with the native
// event timestamp.
type ControllerButton struct {
	Which     int32
	Button    uint8
	Pressed   bool
	Timestamp uint32
}

type DropFile struct{ Path string }

type WindowResized struct{ Width, Height int32 }

type WindowMoved struct{ X, Y int32 }

type WindowFocusGained struct{}

type WindowFocusLost struct{}

type WindowClosed struct{}

func (Quit) event()              {}
func (KeyDown) event()           {}
func (KeyUp) event()             {}
func (TextInput) event()         {}
func (MouseMotion) event()       {}
func (MouseButtonDown) event()   {}
func (MouseButtonUp) event()     {}
func (MouseWheel) event()        {}
func (JoyDeviceAdded) event()    {}
func (JoyDeviceRemoved) event()  {}
func (ControllerAxis) event()    {}
func (ControllerButton) event()  {}
func (DropFile) event()          {}
func (WindowResized) event()     {}
func (WindowMoved) event()       {}
func (WindowFocusGained) event() {}
func (WindowFocusLost) event()   {}
func (WindowClosed) event()      {}

// PollEvent takes one decodable event off the native queue, reporting
// false once the queue is empty. Event kinds this layer does not care
// about are discarded without returning.
func PollEvent() (Event, bool) {
	var buf [eventSize]byte
	for sdlPollEvent(uintptr(unsafe.Pointer(&buf[0]))) != 0 {
		if ev := decodeEvent(&buf); ev != nil {
			return ev, true
		}
	}
	return nil, false
}

// decodeEvent views a 56-byte SDL_Event union as its per-type struct.
// Offsets follow the SDL2 ABI on 64-bit platforms.
func decodeEvent(buf *[eventSize]byte) Event {
	typ := *(*uint32)(unsafe.Pointer(&buf[0]))
	switch typ {
	case eventQuit:
		return Quit{}

	case eventKeyDown:
		return KeyDown{
			Code:   Keycode(*(*int32)(unsafe.Pointer(&buf[20]))),
			Repeat: buf[13] != 0,
		}
	case eventKeyUp:
		return KeyUp{Code: Keycode(*(*int32)(unsafe.Pointer(&buf[20])))}

	case eventTextInput:
		var t TextInput
		copy(t.Text[:], buf[12:12+len(t.Text)])
		return t

	case eventMouseMotion:
		return MouseMotion{
			X: *(*int32)(unsafe.Pointer(&buf[20])),
			Y: *(*int32)(unsafe.Pointer(&buf[24])),
		}
	case eventMouseButtonDown:
		return MouseButtonDown{Button: buf[16]}
	case eventMouseButtonUp:
		return MouseButtonUp{Button: buf[16]}
	case eventMouseWheel:
		return MouseWheel{
			X: *(*int32)(unsafe.Pointer(&buf[16])),
			Y: *(*int32)(unsafe.Pointer(&buf[20])),
		}

	case eventJoyDeviceAdded:
		return JoyDeviceAdded{Index: *(*int32)(unsafe.Pointer(&buf[8]))}
	case eventJoyDeviceRemoved:
		return JoyDeviceRemoved{Instance: *(*int32)(unsafe.Pointer(&buf[8]))}
	case eventControllerAxis:
		return ControllerAxis{
			Timestamp: *(*uint32)(unsafe.Pointer(&buf[4])),
			Which:     *(*int32)(unsafe.Pointer(&buf[8])),
			Axis:      buf[12],
			Value:     *(*int16)(unsafe.Pointer(&buf[16])),
		}
	case eventControllerButtonDown, eventControllerButtonUp:
		return ControllerButton{
			Timestamp: *(*uint32)(unsafe.Pointer(&buf[4])),
			Which:     *(*int32)(unsafe.Pointer(&buf[8])),
			Button:    buf[12],
			Pressed:   typ == eventControllerButtonDown,
		}

	case eventDropFile:
		p := *(*uintptr)(unsafe.Pointer(&buf[8]))
		if p == 0 {
			return nil
		}
		path := goString(p)
		sdlFree(p)
		return DropFile{Path: path}

	case eventWindow:
		return decodeWindowEvent(buf)
	}
	return nil
}

func decodeWindowEvent(buf *[eventSize]byte) Event {
	data1 := *(*int32)(unsafe.Pointer(&buf[16]))
	data2 := *(*int32)(unsafe.Pointer(&buf[20]))
	switch buf[12] {
	case windowEventSizeChanged:
		// RESIZED always follows SIZE_CHANGED for external resizes, so
		// only the latter is surfaced to avoid double notifications.
		return WindowResized{Width: data1, Height: data2}
	case windowEventMoved:
		return WindowMoved{X: data1, Y: data2}
	case windowEventFocusGained:
		return WindowFocusGained{}
	case windowEventFocusLost:
		return WindowFocusLost{}
	case windowEventClose:
		return WindowClosed{}
	}
	return nil
}
