//go:build darwin || freebsd || linux

// Package sdl binds libSDL2 at runtime through purego. The library is
// resolved once per process; every wrapper below assumes Load succeeded.
package sdl

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Subsystem flags for Init.
const (
	InitVideo          uint32 = 0x00000020
	InitJoystick       uint32 = 0x00000200
	InitGameController uint32 = 0x00002000
)

// Window creation flags.
const (
	WindowHidden       uint32 = 0x00000008
	WindowResizable    uint32 = 0x00000020
	WindowAllowHighDPI uint32 = 0x00002000
)

// windowPosUndefined lets the window manager place the window.
const windowPosUndefined int32 = 0x1FFF0000

// Hint names understood by SetHint.
const (
	HintMouseFocusClickthrough = "SDL_MOUSE_FOCUS_CLICKTHROUGH"
	HintVideoAllowScreensaver  = "SDL_VIDEO_ALLOW_SCREENSAVER"
)

// Window-manager subsystem identifiers reported by WindowWMInfo.
const (
	SysWMUnknown uint32 = 0
	SysWMWindows uint32 = 1
	SysWMX11     uint32 = 2
	SysWMCocoa   uint32 = 4
	SysWMWayland uint32 = 6
)

var (
	lib     uintptr
	libOnce sync.Once
	libErr  error
)

var (
	sdlInit                  func(flags uint32) int32
	sdlQuit                  func()
	sdlGetError              func() uintptr
	sdlGetVersion            func(version uintptr)
	sdlSetHint               func(name, value uintptr) int32
	sdlPollEvent             func(event uintptr) int32
	sdlFree                  func(mem uintptr)
	sdlGetCurrentVideoDriver func() uintptr

	sdlCreateWindow          func(title uintptr, x, y, w, h int32, flags uint32) uintptr
	sdlDestroyWindow         func(window uintptr)
	sdlShowWindow            func(window uintptr)
	sdlSetWindowTitle        func(window, title uintptr)
	sdlGetWindowSize         func(window, w, h uintptr)
	sdlGetWindowWMInfo       func(window, info uintptr) int32
	sdlGetWindowDisplayIndex func(window uintptr) int32
	sdlGetDisplayName        func(index int32) uintptr

	sdlStartTextInput   func()
	sdlStopTextInput    func()
	sdlGetClipboardText func() uintptr
	sdlSetClipboardText func(text uintptr) int32
	sdlHasClipboardText func() int32

	sdlNumJoysticks       func() int32
	sdlJoystickOpen       func(index int32) uintptr
	sdlJoystickClose      func(joystick uintptr)
	sdlJoystickInstanceID func(joystick uintptr) int32
	sdlJoystickName       func(joystick uintptr) uintptr
)

// Load resolves libSDL2 once per process. SPINDLE_SDL2_PATH overrides the
// default library name.
func Load() error {
	libOnce.Do(func() {
		handle, err := purego.Dlopen(libraryPath(), purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			libErr = fmt.Errorf("load %s: %w", libraryPath(), err)
			return
		}
		lib = handle
		registerCore()
		registerWindow()
		registerTextAndClipboard()
		registerJoystick()
	})
	return libErr
}

func libraryPath() string {
	if p := os.Getenv("SPINDLE_SDL2_PATH"); p != "" {
		return p
	}
	if runtime.GOOS == "darwin" {
		return "libSDL2-2.0.0.dylib"
	}
	return "libSDL2-2.0.so.0"
}

func registerCore() {
	purego.RegisterLibFunc(&sdlInit, lib, "SDL_Init")
	purego.RegisterLibFunc(&sdlQuit, lib, "SDL_Quit")
	purego.RegisterLibFunc(&sdlGetError, lib, "SDL_GetError")
	purego.RegisterLibFunc(&sdlGetVersion, lib, "SDL_GetVersion")
	purego.RegisterLibFunc(&sdlSetHint, lib, "SDL_SetHint")
	purego.RegisterLibFunc(&sdlPollEvent, lib, "SDL_PollEvent")
	purego.RegisterLibFunc(&sdlFree, lib, "SDL_free")
	purego.RegisterLibFunc(&sdlGetCurrentVideoDriver, lib, "SDL_GetCurrentVideoDriver")
}

func registerWindow() {
	purego.RegisterLibFunc(&sdlCreateWindow, lib, "SDL_CreateWindow")
	purego.RegisterLibFunc(&sdlDestroyWindow, lib, "SDL_DestroyWindow")
	purego.RegisterLibFunc(&sdlShowWindow, lib, "SDL_ShowWindow")
	purego.RegisterLibFunc(&sdlSetWindowTitle, lib, "SDL_SetWindowTitle")
	purego.RegisterLibFunc(&sdlGetWindowSize, lib, "SDL_GetWindowSize")
	purego.RegisterLibFunc(&sdlGetWindowWMInfo, lib, "SDL_GetWindowWMInfo")
	purego.RegisterLibFunc(&sdlGetWindowDisplayIndex, lib, "SDL_GetWindowDisplayIndex")
	purego.RegisterLibFunc(&sdlGetDisplayName, lib, "SDL_GetDisplayName")
}

func registerTextAndClipboard() {
	purego.RegisterLibFunc(&sdlStartTextInput, lib, "SDL_StartTextInput")
	purego.RegisterLibFunc(&sdlStopTextInput, lib, "SDL_StopTextInput")
	purego.RegisterLibFunc(&sdlGetClipboardText, lib, "SDL_GetClipboardText")
	purego.RegisterLibFunc(&sdlSetClipboardText, lib, "SDL_SetClipboardText")
	purego.RegisterLibFunc(&sdlHasClipboardText, lib, "SDL_HasClipboardText")
}

func registerJoystick() {
	purego.RegisterLibFunc(&sdlNumJoysticks, lib, "SDL_NumJoysticks")
	purego.RegisterLibFunc(&sdlJoystickOpen, lib, "SDL_JoystickOpen")
	purego.RegisterLibFunc(&sdlJoystickClose, lib, "SDL_JoystickClose")
	purego.RegisterLibFunc(&sdlJoystickInstanceID, lib, "SDL_JoystickInstanceID")
	purego.RegisterLibFunc(&sdlJoystickName, lib, "SDL_JoystickName")
}

// Init starts the given subsystems.
func Init(flags uint32) error {
	if sdlInit(flags) != 0 {
		return fmt.Errorf("SDL_Init: %s", GetError())
	}
	return nil
}

// Shutdown shuts every subsystem and the library down.
func Shutdown() { sdlQuit() }

// GetError returns SDL's thread-local error string.
func GetError() string { return goString(sdlGetError()) }

// Version returns the linked library version.
func Version() (major, minor, patch uint8) {
	var v [3]uint8
	sdlGetVersion(uintptr(unsafe.Pointer(&v[0])))
	return v[0], v[1], v[2]
}

// VersionAtLeast reports whether the linked library is at least
// major.minor.patch.
func VersionAtLeast(major, minor, patch int) bool {
	a, b, c := Version()
	got := int(a)*1_000_000 + int(b)*1_000 + int(c)
	return got >= major*1_000_000+minor*1_000+patch
}

// SetHint sets a configuration hint, reporting whether SDL accepted it.
func SetHint(name, value string) bool {
	n := cString(name)
	v := cString(value)
	ok := sdlSetHint(uintptr(unsafe.Pointer(&n[0])), uintptr(unsafe.Pointer(&v[0]))) != 0
	runtime.KeepAlive(n)
	runtime.KeepAlive(v)
	return ok
}

// CurrentVideoDriver names the active video driver ("wayland", "x11", ...).
func CurrentVideoDriver() string { return goString(sdlGetCurrentVideoDriver()) }

// CreateWindow creates a window placed by the window manager.
func CreateWindow(title string, w, h int32, flags uint32) (uintptr, error) {
	t := cString(title)
	win := sdlCreateWindow(uintptr(unsafe.Pointer(&t[0])), windowPosUndefined, windowPosUndefined, w, h, flags)
	runtime.KeepAlive(t)
	if win == 0 {
		return 0, fmt.Errorf("SDL_CreateWindow: %s", GetError())
	}
	return win, nil
}

func DestroyWindow(window uintptr) {
	if window != 0 {
		sdlDestroyWindow(window)
	}
}

func ShowWindow(window uintptr) { sdlShowWindow(window) }

func SetWindowTitle(window uintptr, title string) {
	t := cString(title)
	sdlSetWindowTitle(window, uintptr(unsafe.Pointer(&t[0])))
	runtime.KeepAlive(t)
}

func WindowSize(window uintptr) (w, h int32) {
	sdlGetWindowSize(window, uintptr(unsafe.Pointer(&w)), uintptr(unsafe.Pointer(&h)))
	return w, h
}

// WMInfo mirrors SDL_SysWMinfo: a primed version triple, the subsystem
// tag, and the 64-byte per-driver union.
type WMInfo struct {
	Major, Minor, Patch uint8
	_                   uint8
	Subsystem           uint32
	Data                [64]byte
}

// WindowWMInfo fetches window-manager info for window. SDL requires the
// struct version to be primed before the call; this wrapper primes it
// from the linked version.
func WindowWMInfo(window uintptr) (WMInfo, error) {
	var info WMInfo
	info.Major, info.Minor, info.Patch = Version()
	if sdlGetWindowWMInfo(window, uintptr(unsafe.Pointer(&info))) == 0 {
		return WMInfo{}, fmt.Errorf("SDL_GetWindowWMInfo: %s", GetError())
	}
	return info, nil
}

// WaylandSurface returns the wl_surface from a wayland WMInfo, or 0.
// The wayland union places wl_display first and wl_surface second.
func (i WMInfo) WaylandSurface() uintptr {
	if i.Subsystem != SysWMWayland {
		return 0
	}
	return *(*uintptr)(unsafe.Pointer(&i.Data[8]))
}

// WindowDisplayIndex returns the display the window sits on, negative on
// failure.
func WindowDisplayIndex(window uintptr) int32 {
	return sdlGetWindowDisplayIndex(window)
}

// DisplayName names a display by index, empty on failure.
func DisplayName(index int32) string {
	return goString(sdlGetDisplayName(index))
}

func StartTextInput() { sdlStartTextInput() }
func StopTextInput()  { sdlStopTextInput() }

// ClipboardText reads the clipboard, honoring SDL's contract that the
// returned native string must be freed by the caller.
func ClipboardText() (string, error) {
	p := sdlGetClipboardText()
	if p == 0 {
		return "", fmt.Errorf("SDL_GetClipboardText: %s", GetError())
	}
	s := goString(p)
	sdlFree(p)
	return s, nil
}

func SetClipboardText(text string) error {
	t := cString(text)
	rc := sdlSetClipboardText(uintptr(unsafe.Pointer(&t[0])))
	runtime.KeepAlive(t)
	if rc != 0 {
		return fmt.Errorf("SDL_SetClipboardText: %s", GetError())
	}
	return nil
}

func HasClipboardText() bool { return sdlHasClipboardText() != 0 }

func NumJoysticks() int32 { return sdlNumJoysticks() }

// JoystickOpen opens the device at a device index, returning 0 on failure.
func JoystickOpen(index int32) uintptr { return sdlJoystickOpen(index) }

func JoystickClose(joystick uintptr) {
	if joystick != 0 {
		sdlJoystickClose(joystick)
	}
}

// JoystickInstanceID returns the stable instance id for an open device,
// negative on failure.
func JoystickInstanceID(joystick uintptr) int32 {
	return sdlJoystickInstanceID(joystick)
}

func JoystickName(joystick uintptr) string {
	return goString(sdlJoystickName(joystick))
}

func cString(s string) []byte { return append([]byte(s), 0) }

func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
