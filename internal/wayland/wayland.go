//go:build darwin || freebsd || linux

// Package wayland drives the compositor's frame-callback handshake
// through the client library, resolved at runtime. The library is
// optional equipment: when it or any needed symbol is missing, Open
// fails soft and the run loop simply presents unpaced.
package wayland

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/rs/zerolog"
)

// wl_surface request opcode for wl_surface.frame.
const frameOpcode = 3

// callbackListener mirrors wl_callback_listener: one "done" function
// pointer. The single instance below lives for the whole process so the
// address handed to the native side never moves.
type callbackListener struct {
	done uintptr
}

var (
	listenerOnce sync.Once
	listener     *callbackListener

	mu      sync.Mutex
	current *Bridge
)

var (
	wlProxyAddListener func(proxy, impl, data uintptr) int32
	wlProxyDestroy     func(proxy uintptr)
	marshalConstructor uintptr
	callbackInterface  uintptr
)

// Bridge owns the loaded client library and at most one outstanding
// frame request.
type Bridge struct {
	log     zerolog.Logger
	lib     uintptr
	pending uintptr
	onDone  func()
}

// Open loads the compositor client library and resolves the frame
// callback machinery. A missing library or symbol returns an error the
// caller treats as "pacing unavailable"; it is never fatal.
func Open(log zerolog.Logger) (*Bridge, error) {
	lib, err := purego.Dlopen(libraryPath(), purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", libraryPath(), err)
	}

	symbols := []string{
		"wl_proxy_marshal_constructor",
		"wl_proxy_add_listener",
		"wl_proxy_destroy",
		"wl_callback_interface",
	}
	addrs := make(map[string]uintptr, len(symbols))
	for _, name := range symbols {
		addr, err := purego.Dlsym(lib, name)
		if err != nil {
			_ = purego.Dlclose(lib)
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		addrs[name] = addr
	}

	purego.RegisterLibFunc(&wlProxyAddListener, lib, "wl_proxy_add_listener")
	purego.RegisterLibFunc(&wlProxyDestroy, lib, "wl_proxy_destroy")
	marshalConstructor = addrs["wl_proxy_marshal_constructor"]
	callbackInterface = addrs["wl_callback_interface"]

	listenerOnce.Do(func() {
		listener = &callbackListener{done: purego.NewCallback(frameDone)}
	})

	b := &Bridge{log: log, lib: lib}
	mu.Lock()
	current = b
	mu.Unlock()
	return b, nil
}

func libraryPath() string {
	if p := os.Getenv("SPINDLE_WAYLAND_PATH"); p != "" {
		return p
	}
	return "libwayland-client.so.0"
}

// OnDone registers the hook invoked when the compositor signals that the
// next frame may be drawn. The hook runs on the loop thread, inside the
// event pump.
func (b *Bridge) OnDone(f func()) {
	if b == nil {
		return
	}
	b.onDone = f
}

// RequestFrame asks the compositor for a frame callback on surface,
// registering the pinned listener against the new proxy. It reports
// false when the bridge or surface is absent, a request is already
// outstanding, or the proxy could not be constructed.
func (b *Bridge) RequestFrame(surface uintptr) bool {
	if b == nil || b.lib == 0 || surface == 0 || b.pending != 0 {
		return false
	}
	// wl_surface_frame is a variadic constructor, outside what
	// RegisterLibFunc can express.
	proxy, _, _ := purego.SyscallN(marshalConstructor, surface, frameOpcode, callbackInterface, 0)
	if proxy == 0 {
		b.log.Debug().Msg("frame callback proxy construction failed")
		return false
	}
	wlProxyAddListener(proxy, uintptr(unsafe.Pointer(listener)), 0)
	b.pending = proxy
	return true
}

// Pending reports whether a frame request is outstanding.
func (b *Bridge) Pending() bool {
	return b != nil && b.pending != 0
}

// frameDone is the native wl_callback_listener.done entry point. The
// event system dispatches it synchronously inside the loop thread's
// event pump, so no locking beyond the bridge lookup is needed.
func frameDone(data, callback, callbackData uintptr) uintptr {
	mu.Lock()
	b := current
	mu.Unlock()
	if b == nil {
		return 0
	}
	wlProxyDestroy(callback)
	if callback == b.pending {
		b.pending = 0
		if b.onDone != nil {
			b.onDone()
		}
	}
	return 0
}

// DestroyPending destroys the outstanding frame request, if any. Safe on
// a nil bridge and safe to call repeatedly.
func (b *Bridge) DestroyPending() {
	if b == nil || b.pending == 0 {
		return
	}
	wlProxyDestroy(b.pending)
	b.pending = 0
}

// Close unloads the client library. Safe on a nil bridge; idempotent.
// Callers destroy any pending request first so no native registration
// still references the listener.
func (b *Bridge) Close() {
	if b == nil || b.lib == 0 {
		return
	}
	mu.Lock()
	if current == b {
		current = nil
	}
	mu.Unlock()
	_ = purego.Dlclose(b.lib)
	b.lib = 0
}
