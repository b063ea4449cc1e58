package spindle

import (
	"github.com/arvheim/spindle/input"
	"github.com/arvheim/spindle/internal/sdl"
	"github.com/arvheim/spindle/internal/utf8x"
)

// pump drains every event the native backend has buffered. It never
// blocks; each event applies exactly one state transition.
func (l *Loop) pump() {
	for {
		ev, ok := l.b.poll()
		if !ok {
			return
		}
		l.translate(ev)
	}
}

func (l *Loop) translate(ev sdl.Event) {
	switch ev := ev.(type) {
	case sdl.Quit:
		l.Exit()
	case sdl.WindowClosed:
		l.Exit()
	case sdl.KeyDown:
		l.keyDown(ev.Code)
	case sdl.KeyUp:
		l.keyUp(ev.Code)
	case sdl.TextInput:
		l.textInput(ev.Text[:])
	case sdl.MouseMotion:
		l.mouse.MoveTo(int(ev.X), int(ev.Y))
	case sdl.MouseButtonDown:
		if btn, ok := buttonFromNative(ev.Button); ok {
			l.mouse.SetButton(btn, true)
		}
	case sdl.MouseButtonUp:
		if btn, ok := buttonFromNative(ev.Button); ok {
			l.mouse.SetButton(btn, false)
		}
	case sdl.MouseWheel:
		l.mouse.Scroll(int(ev.X), int(ev.Y))
	case sdl.JoyDeviceAdded:
		l.joysticks.add(ev.Index)
	case sdl.JoyDeviceRemoved:
		l.joysticks.remove(ev.Instance)
	case sdl.ControllerAxis:
		l.joysticks.notePacket(ev.Which, ev.Timestamp)
	case sdl.ControllerButton:
		l.joysticks.notePacket(ev.Which, ev.Timestamp)
	case sdl.DropFile:
		if l.handlers.FileDrop != nil {
			l.handlers.FileDrop(ev.Path)
		}
	case sdl.WindowResized:
		l.window.resized(int(ev.Width), int(ev.Height))
		if l.handlers.Resize != nil {
			l.handlers.Resize(int(ev.Width), int(ev.Height))
		}
	case sdl.WindowMoved:
		l.window.refreshDisplay()
		if l.handlers.Moved != nil {
			l.handlers.Moved(int(ev.X), int(ev.Y), l.window.Display())
		}
	case sdl.WindowFocusGained:
		l.setActive(true)
	case sdl.WindowFocusLost:
		l.setActive(false)
	}
}

// keyDown adds the key to the pressed set and notifies. Repeats for a
// key already held are absorbed entirely. Keys whose portable value is
// a control character also surface through the text-input notification,
// so backspace and enter reach text consumers without a native text
// event.
func (l *Loop) keyDown(code sdl.Keycode) {
	key, ok := keyFromCode(code)
	if !ok {
		l.log.Debug().Int32("keycode", int32(code)).Msg("dropping unmapped key")
		return
	}
	if !l.keyboard.Press(key) {
		return
	}
	if l.handlers.KeyDown != nil {
		l.handlers.KeyDown(key)
	}
	if r := rune(key); r < 0x20 || r == 0x7F {
		if l.handlers.TextInput != nil {
			l.handlers.TextInput(r, key)
		}
	}
}

func (l *Loop) keyUp(code sdl.Keycode) {
	key, ok := keyFromCode(code)
	if !ok {
		return
	}
	l.keyboard.Release(key)
	if l.handlers.KeyUp != nil {
		l.handlers.KeyUp(key)
	}
}

// textInput decodes a NUL-terminated UTF-8 run one scalar at a time.
// Code points beyond 0xFFFF decode fine but are dropped here because
// the portable text notification carries a 16-bit character model. A
// malformed sequence abandons the rest of the run.
func (l *Loop) textInput(text []byte) {
	if !l.textEnabled {
		return
	}
	for i := 0; i < len(text) && text[i] != 0; {
		r, n := utf8x.DecodeRune(text[i:])
		if n == 0 {
			l.log.Debug().Msg("dropping malformed text input")
			return
		}
		i += n
		if r > 0xFFFF {
			continue
		}
		if l.handlers.TextInput != nil {
			l.handlers.TextInput(r, keyFromRune(r))
		}
	}
}

func buttonFromNative(b uint8) (input.Button, bool) {
	switch b {
	case sdl.ButtonLeft:
		return input.ButtonLeft, true
	case sdl.ButtonMiddle:
		return input.ButtonMiddle, true
	case sdl.ButtonRight:
		return input.ButtonRight, true
	case sdl.ButtonX1:
		return input.ButtonX1, true
	case sdl.ButtonX2:
		return input.ButtonX2, true
	}
	return 0, false
}
