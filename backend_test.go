package spindle

import (
	"fmt"

	"github.com/arvheim/spindle/internal/sdl"
)

// pumpStep is what one event-pump call observes: optionally the pending
// frame-done callback firing first, then a fixed batch of events.
type pumpStep struct {
	fireDone bool
	events   []sdl.Event
}

// fakeBackend scripts one pumpStep per loop iteration and records every
// mutating native call in order, so tests can assert call sequencing.
type fakeBackend struct {
	script  []pumpStep
	step    int
	midStep bool

	calls []string

	frameOK bool
	done    func()

	display    string
	clipboard  string
	winW, winH int

	joyFail      bool
	nextInstance int32
}

func (f *fakeBackend) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeBackend) show() { f.record("show") }

func (f *fakeBackend) poll() (sdl.Event, bool) {
	if !f.midStep {
		f.midStep = true
		if f.step < len(f.script) && f.script[f.step].fireDone && f.done != nil {
			f.done()
		}
	}
	if f.step < len(f.script) && len(f.script[f.step].events) > 0 {
		ev := f.script[f.step].events[0]
		f.script[f.step].events = f.script[f.step].events[1:]
		return ev, true
	}
	f.midStep = false
	f.step++
	return nil, false
}

func (f *fakeBackend) requestFrame() bool {
	f.record("requestFrame")
	return f.frameOK
}

func (f *fakeBackend) setFrameDone(fn func()) { f.done = fn }

func (f *fakeBackend) destroyPendingFrame() { f.record("destroyPendingFrame") }

func (f *fakeBackend) closeBridge() { f.record("closeBridge") }

func (f *fakeBackend) openJoystick(index int32) (int32, bool) {
	f.record(fmt.Sprintf("openJoystick(%d)", index))
	if f.joyFail {
		return 0, false
	}
	instance := f.nextInstance
	f.nextInstance++
	return instance, true
}

func (f *fakeBackend) closeJoystick(instance int32) {
	f.record(fmt.Sprintf("closeJoystick(%d)", instance))
}

func (f *fakeBackend) displayName() string { return f.display }

func (f *fakeBackend) setTitle(title string) { f.record("setTitle(" + title + ")") }

func (f *fakeBackend) size() (int, int) { return f.winW, f.winH }

func (f *fakeBackend) clipboardText() (string, error) { return f.clipboard, nil }

func (f *fakeBackend) setClipboardText(text string) error {
	f.clipboard = text
	return nil
}

func (f *fakeBackend) hasClipboardText() bool { return f.clipboard != "" }

func (f *fakeBackend) startTextInput() { f.record("startTextInput") }

func (f *fakeBackend) stopTextInput() { f.record("stopTextInput") }

func (f *fakeBackend) destroyWindow() { f.record("destroyWindow") }

func (f *fakeBackend) quitSubsystem() { f.record("quitSubsystem") }

func countCalls(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

// stubGame counts ticks and defers behavior to optional hooks.
type stubGame struct {
	update func() error
	draw   func()

	updates int
	draws   int
}

func (g *stubGame) Update() error {
	g.updates++
	if g.update != nil {
		return g.update()
	}
	return nil
}

func (g *stubGame) Draw() {
	g.draws++
	if g.draw != nil {
		g.draw()
	}
}
