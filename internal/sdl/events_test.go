//go:build darwin || freebsd || linux

package sdl

import (
	"runtime"
	"testing"
	"unsafe"
)

// eventBuf builds a raw event union the way the native side writes it:
// through typed stores at ABI offsets.
type eventBuf [eventSize]byte

func (b *eventBuf) putU32(off int, v uint32) { *(*uint32)(unsafe.Pointer(&b[off])) = v }
func (b *eventBuf) putI32(off int, v int32)  { *(*int32)(unsafe.Pointer(&b[off])) = v }
func (b *eventBuf) putI16(off int, v int16)  { *(*int16)(unsafe.Pointer(&b[off])) = v }
func (b *eventBuf) putPtr(off int, v uintptr) {
	*(*uintptr)(unsafe.Pointer(&b[off])) = v
}

func TestDecodeQuit(t *testing.T) {
	var b eventBuf
	b.putU32(0, eventQuit)
	if _, ok := decodeEvent((*[eventSize]byte)(&b)).(Quit); !ok {
		t.Fatal("expected Quit")
	}
}

func TestDecodeKeyEvents(t *testing.T) {
	var b eventBuf
	b.putU32(0, eventKeyDown)
	b[13] = 1 // repeat
	b.putI32(20, int32(KeycodeReturn))
	ev := decodeEvent((*[eventSize]byte)(&b))
	kd, ok := ev.(KeyDown)
	if !ok {
		t.Fatalf("expected KeyDown, got %T", ev)
	}
	if kd.Code != KeycodeReturn || !kd.Repeat {
		t.Fatalf("KeyDown = %+v, want Code=Return Repeat=true", kd)
	}

	b = eventBuf{}
	b.putU32(0, eventKeyUp)
	b.putI32(20, int32(KeycodeA))
	ku, ok := decodeEvent((*[eventSize]byte)(&b)).(KeyUp)
	if !ok || ku.Code != KeycodeA {
		t.Fatalf("KeyUp = %+v, want Code=A", ku)
	}
}

func TestDecodeTextInput(t *testing.T) {
	var b eventBuf
	b.putU32(0, eventTextInput)
	copy(b[12:], "hi\x00")
	ev := decodeEvent((*[eventSize]byte)(&b))
	ti, ok := ev.(TextInput)
	if !ok {
		t.Fatalf("expected TextInput, got %T", ev)
	}
	if ti.Text[0] != 'h' || ti.Text[1] != 'i' || ti.Text[2] != 0 {
		t.Fatalf("TextInput.Text = % x", ti.Text[:4])
	}
}

func TestDecodeMouseEvents(t *testing.T) {
	var b eventBuf
	b.putU32(0, eventMouseMotion)
	b.putI32(20, 101)
	b.putI32(24, -7)
	mm, ok := decodeEvent((*[eventSize]byte)(&b)).(MouseMotion)
	if !ok || mm.X != 101 || mm.Y != -7 {
		t.Fatalf("MouseMotion = %+v, want X=101 Y=-7", mm)
	}

	b = eventBuf{}
	b.putU32(0, eventMouseButtonDown)
	b[16] = 3
	bd, ok := decodeEvent((*[eventSize]byte)(&b)).(MouseButtonDown)
	if !ok || bd.Button != 3 {
		t.Fatalf("MouseButtonDown = %+v, want Button=3", bd)
	}

	b = eventBuf{}
	b.putU32(0, eventMouseButtonUp)
	b[16] = 5
	bu, ok := decodeEvent((*[eventSize]byte)(&b)).(MouseButtonUp)
	if !ok || bu.Button != 5 {
		t.Fatalf("MouseButtonUp = %+v, want Button=5", bu)
	}

	b = eventBuf{}
	b.putU32(0, eventMouseWheel)
	b.putI32(16, -2)
	b.putI32(20, 1)
	mw, ok := decodeEvent((*[eventSize]byte)(&b)).(MouseWheel)
	if !ok || mw.X != -2 || mw.Y != 1 {
		t.Fatalf("MouseWheel = %+v, want X=-2 Y=1", mw)
	}
}

func TestDecodeJoystickAndController(t *testing.T) {
	var b eventBuf
	b.putU32(0, eventJoyDeviceAdded)
	b.putI32(8, 2)
	ja, ok := decodeEvent((*[eventSize]byte)(&b)).(JoyDeviceAdded)
	if !ok || ja.Index != 2 {
		t.Fatalf("JoyDeviceAdded = %+v, want Index=2", ja)
	}

	b = eventBuf{}
	b.putU32(0, eventJoyDeviceRemoved)
	b.putI32(8, 11)
	jr, ok := decodeEvent((*[eventSize]byte)(&b)).(JoyDeviceRemoved)
	if !ok || jr.Instance != 11 {
		t.Fatalf("JoyDeviceRemoved = %+v, want Instance=11", jr)
	}

	b = eventBuf{}
	b.putU32(0, eventControllerAxis)
	b.putU32(4, 5000)
	b.putI32(8, 11)
	b[12] = 1
	b.putI16(16, -3200)
	ca, ok := decodeEvent((*[eventSize]byte)(&b)).(ControllerAxis)
	if !ok {
		t.Fatal("expected ControllerAxis")
	}
	if ca.Which != 11 || ca.Axis != 1 || ca.Value != -3200 || ca.Timestamp != 5000 {
		t.Fatalf("ControllerAxis = %+v", ca)
	}

	b = eventBuf{}
	b.putU32(0, eventControllerButtonDown)
	b.putU32(4, 6000)
	b.putI32(8, 11)
	b[12] = 4
	cb, ok := decodeEvent((*[eventSize]byte)(&b)).(ControllerButton)
	if !ok {
		t.Fatal("expected ControllerButton")
	}
	if cb.Which != 11 || cb.Button != 4 || !cb.Pressed || cb.Timestamp != 6000 {
		t.Fatalf("ControllerButton = %+v", cb)
	}

	b.putU32(0, eventControllerButtonUp)
	cu := decodeEvent((*[eventSize]byte)(&b)).(ControllerButton)
	if cu.Pressed {
		t.Fatal("button-up decoded as pressed")
	}
}

func TestDecodeDropFile(t *testing.T) {
	restore := sdlFree
	var freed uintptr
	sdlFree = func(p uintptr) { freed = p }
	defer func() { sdlFree = restore }()

	path := append([]byte("/tmp/drop.txt"), 0)
	p := uintptr(unsafe.Pointer(&path[0]))

	var b eventBuf
	b.putU32(0, eventDropFile)
	b.putPtr(8, p)
	ev := decodeEvent((*[eventSize]byte)(&b))
	df, ok := ev.(DropFile)
	if !ok {
		t.Fatalf("expected DropFile, got %T", ev)
	}
	if df.Path != "/tmp/drop.txt" {
		t.Fatalf("Path = %q", df.Path)
	}
	if freed != p {
		t.Fatal("native drop string was not freed")
	}
	runtime.KeepAlive(path)
}

func TestDecodeWindowEvents(t *testing.T) {
	mk := func(sub uint8, d1, d2 int32) Event {
		var b eventBuf
		b.putU32(0, eventWindow)
		b[12] = sub
		b.putI32(16, d1)
		b.putI32(20, d2)
		return decodeEvent((*[eventSize]byte)(&b))
	}

	if wr, ok := mk(windowEventSizeChanged, 800, 600).(WindowResized); !ok || wr.Width != 800 || wr.Height != 600 {
		t.Fatalf("size-changed decode = %+v", wr)
	}
	if wm, ok := mk(windowEventMoved, 10, 30).(WindowMoved); !ok || wm.X != 10 || wm.Y != 30 {
		t.Fatalf("moved decode = %+v", wm)
	}
	if _, ok := mk(windowEventFocusGained, 0, 0).(WindowFocusGained); !ok {
		t.Fatal("expected WindowFocusGained")
	}
	if _, ok := mk(windowEventFocusLost, 0, 0).(WindowFocusLost); !ok {
		t.Fatal("expected WindowFocusLost")
	}
	if _, ok := mk(windowEventClose, 0, 0).(WindowClosed); !ok {
		t.Fatal("expected WindowClosed")
	}
	if ev := mk(3 /* exposed */, 0, 0); ev != nil {
		t.Fatalf("uninteresting window sub-event decoded to %T", ev)
	}
}

func TestDecodeUnknownEvent(t *testing.T) {
	var b eventBuf
	b.putU32(0, 0x9999)
	if ev := decodeEvent((*[eventSize]byte)(&b)); ev != nil {
		t.Fatalf("unknown event type decoded to %T", ev)
	}
}

func TestWMInfoWaylandSurface(t *testing.T) {
	var info WMInfo
	info.Subsystem = SysWMWayland
	*(*uintptr)(unsafe.Pointer(&info.Data[0])) = 0xAAAA // wl_display
	*(*uintptr)(unsafe.Pointer(&info.Data[8])) = 0xBBBB // wl_surface
	if got := info.WaylandSurface(); got != 0xBBBB {
		t.Fatalf("WaylandSurface() = %#x, want 0xbbbb", got)
	}

	info.Subsystem = SysWMX11
	if got := info.WaylandSurface(); got != 0 {
		t.Fatalf("WaylandSurface() on X11 info = %#x, want 0", got)
	}
}
