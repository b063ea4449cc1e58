package spindle

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arvheim/spindle/internal/sdl"
	"github.com/arvheim/spindle/internal/wayland"
)

// backend is the seam between the loop and the native layer. The SDL
// implementation below is the production one; loop tests substitute
// recording fakes.
type backend interface {
	show()
	poll() (sdl.Event, bool)

	requestFrame() bool
	setFrameDone(f func())
	destroyPendingFrame()
	closeBridge()

	openJoystick(index int32) (instance int32, ok bool)
	closeJoystick(instance int32)

	displayName() string
	setTitle(title string)
	size() (w, h int)
	clipboardText() (string, error)
	setClipboardText(text string) error
	hasClipboardText() bool
	startTextInput()
	stopTextInput()

	destroyWindow()
	quitSubsystem()
}

type sdlBackend struct {
	log     zerolog.Logger
	window  uintptr
	surface uintptr
	bridge  *wayland.Bridge
	sticks  map[int32]uintptr
}

func newSDLBackend(cfg Config, log zerolog.Logger) (*sdlBackend, error) {
	if err := sdl.Load(); err != nil {
		return nil, err
	}
	if err := sdl.Init(sdl.InitVideo | sdl.InitJoystick | sdl.InitGameController); err != nil {
		return nil, err
	}

	sdl.SetHint(sdl.HintMouseFocusClickthrough, "1")
	if cfg.Window.AllowScreensaver {
		sdl.SetHint(sdl.HintVideoAllowScreensaver, "1")
	}

	flags := sdl.WindowHidden | sdl.WindowAllowHighDPI
	if cfg.Window.Resizable {
		flags |= sdl.WindowResizable
	}
	window, err := sdl.CreateWindow(cfg.Window.Title, int32(cfg.Window.Width), int32(cfg.Window.Height), flags)
	if err != nil {
		sdl.Shutdown()
		return nil, fmt.Errorf("create window: %w", err)
	}

	b := &sdlBackend{
		log:    log,
		window: window,
		sticks: make(map[int32]uintptr),
	}
	b.log.Debug().Int32("joysticks", sdl.NumJoysticks()).Msg("joystick subsystem ready")
	if cfg.Loop.SynchronizedPresentation {
		b.initPacing()
	}
	return b, nil
}

// initPacing wires compositor frame callbacks when the session supports
// them. Every early return leaves the loop running correctly, just
// without pacing.
func (b *sdlBackend) initPacing() {
	if !sdl.VersionAtLeast(2, 0, 16) {
		major, minor, patch := sdl.Version()
		b.log.Warn().
			Str("version", fmt.Sprintf("%d.%d.%d", major, minor, patch)).
			Msg("SDL predates wayland frame callbacks; presentation not synchronized")
		return
	}
	info, err := sdl.WindowWMInfo(b.window)
	if err != nil {
		b.log.Warn().Err(err).Msg("window manager info unavailable; presentation not synchronized")
		return
	}
	if info.Subsystem != sdl.SysWMWayland {
		b.log.Debug().
			Str("driver", sdl.CurrentVideoDriver()).
			Msg("not a wayland session; presentation not synchronized")
		return
	}
	surface := info.WaylandSurface()
	if surface == 0 {
		b.log.Warn().Msg("wayland surface missing; presentation not synchronized")
		return
	}
	bridge, err := wayland.Open(b.log.With().Str("component", "wayland").Logger())
	if err != nil {
		b.log.Warn().Err(err).Msg("compositor client library unavailable; presentation not synchronized")
		return
	}
	b.bridge = bridge
	b.surface = surface
	b.log.Info().Msg("pacing frames on compositor callbacks")
}

func (b *sdlBackend) show()                   { sdl.ShowWindow(b.window) }
func (b *sdlBackend) poll() (sdl.Event, bool) { return sdl.PollEvent() }

func (b *sdlBackend) requestFrame() bool    { return b.bridge.RequestFrame(b.surface) }
func (b *sdlBackend) setFrameDone(f func()) { b.bridge.OnDone(f) }
func (b *sdlBackend) destroyPendingFrame()  { b.bridge.DestroyPending() }
func (b *sdlBackend) closeBridge()          { b.bridge.Close() }

func (b *sdlBackend) openJoystick(index int32) (int32, bool) {
	handle := sdl.JoystickOpen(index)
	if handle == 0 {
		b.log.Warn().Int32("index", index).Str("error", sdl.GetError()).Msg("joystick open failed")
		return 0, false
	}
	instance := sdl.JoystickInstanceID(handle)
	if instance < 0 {
		sdl.JoystickClose(handle)
		return 0, false
	}
	b.sticks[instance] = handle
	b.log.Info().
		Int32("instance", instance).
		Str("name", sdl.JoystickName(handle)).
		Msg("joystick attached")
	return instance, true
}

func (b *sdlBackend) closeJoystick(instance int32) {
	if handle, ok := b.sticks[instance]; ok {
		sdl.JoystickClose(handle)
		delete(b.sticks, instance)
	}
}

func (b *sdlBackend) displayName() string {
	index := sdl.WindowDisplayIndex(b.window)
	if index < 0 {
		return ""
	}
	return sdl.DisplayName(index)
}

func (b *sdlBackend) setTitle(title string) { sdl.SetWindowTitle(b.window, title) }

func (b *sdlBackend) size() (int, int) {
	w, h := sdl.WindowSize(b.window)
	return int(w), int(h)
}

func (b *sdlBackend) clipboardText() (string, error)     { return sdl.ClipboardText() }
func (b *sdlBackend) setClipboardText(text string) error { return sdl.SetClipboardText(text) }
func (b *sdlBackend) hasClipboardText() bool             { return sdl.HasClipboardText() }
func (b *sdlBackend) startTextInput()                    { sdl.StartTextInput() }
func (b *sdlBackend) stopTextInput()                     { sdl.StopTextInput() }

func (b *sdlBackend) destroyWindow() {
	if b.window != 0 {
		sdl.DestroyWindow(b.window)
		b.window = 0
	}
}

func (b *sdlBackend) quitSubsystem() { sdl.Shutdown() }
