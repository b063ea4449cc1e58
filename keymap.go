package spindle

import (
	"github.com/arvheim/spindle/input"
	"github.com/arvheim/spindle/internal/sdl"
)

// keymap translates native keycodes into the portable key model. Keys
// with no portable identity stay unmapped and their events are dropped.
var keymap = map[sdl.Keycode]input.Key{
	sdl.KeycodeA: input.KeyA,
	sdl.KeycodeB: input.KeyB,
	sdl.KeycodeC: input.KeyC,
	sdl.KeycodeD: input.KeyD,
	sdl.KeycodeE: input.KeyE,
	sdl.KeycodeF: input.KeyF,
	sdl.KeycodeG: input.KeyG,
	sdl.KeycodeH: input.KeyH,
	sdl.KeycodeI: input.KeyI,
	sdl.KeycodeJ: input.KeyJ,
	sdl.KeycodeK: input.KeyK,
	sdl.KeycodeL: input.KeyL,
	sdl.KeycodeM: input.KeyM,
	sdl.KeycodeN: input.KeyN,
	sdl.KeycodeO: input.KeyO,
	sdl.KeycodeP: input.KeyP,
	sdl.KeycodeQ: input.KeyQ,
	sdl.KeycodeR: input.KeyR,
	sdl.KeycodeS: input.KeyS,
	sdl.KeycodeT: input.KeyT,
	sdl.KeycodeU: input.KeyU,
	sdl.KeycodeV: input.KeyV,
	sdl.KeycodeW: input.KeyW,
	sdl.KeycodeX: input.KeyX,
	sdl.KeycodeY: input.KeyY,
	sdl.KeycodeZ: input.KeyZ,

	sdl.Keycode0: input.KeyD0,
	sdl.Keycode1: input.KeyD1,
	sdl.Keycode2: input.KeyD2,
	sdl.Keycode3: input.KeyD3,
	sdl.Keycode4: input.KeyD4,
	sdl.Keycode5: input.KeyD5,
	sdl.Keycode6: input.KeyD6,
	sdl.Keycode7: input.KeyD7,
	sdl.Keycode8: input.KeyD8,
	sdl.Keycode9: input.KeyD9,

	sdl.KeycodeKP0: input.KeyNumPad0,
	sdl.KeycodeKP1: input.KeyNumPad1,
	sdl.KeycodeKP2: input.KeyNumPad2,
	sdl.KeycodeKP3: input.KeyNumPad3,
	sdl.KeycodeKP4: input.KeyNumPad4,
	sdl.KeycodeKP5: input.KeyNumPad5,
	sdl.KeycodeKP6: input.KeyNumPad6,
	sdl.KeycodeKP7: input.KeyNumPad7,
	sdl.KeycodeKP8: input.KeyNumPad8,
	sdl.KeycodeKP9: input.KeyNumPad9,

	sdl.KeycodeKPDivide:   input.KeyDivide,
	sdl.KeycodeKPMultiply: input.KeyMultiply,
	sdl.KeycodeKPMinus:    input.KeySubtract,
	sdl.KeycodeKPPlus:     input.KeyAdd,
	sdl.KeycodeKPEnter:    input.KeyEnter,
	sdl.KeycodeKPPeriod:   input.KeyDecimal,

	sdl.KeycodeBackspace: input.KeyBack,
	sdl.KeycodeTab:       input.KeyTab,
	sdl.KeycodeReturn:    input.KeyEnter,
	sdl.KeycodeEscape:    input.KeyEscape,
	sdl.KeycodeSpace:     input.KeySpace,
	sdl.KeycodeDelete:    input.KeyDelete,
	sdl.KeycodeInsert:    input.KeyInsert,
	sdl.KeycodeHome:      input.KeyHome,
	sdl.KeycodeEnd:       input.KeyEnd,
	sdl.KeycodePageUp:    input.KeyPageUp,
	sdl.KeycodePageDown:  input.KeyPageDown,

	sdl.KeycodeRight: input.KeyRight,
	sdl.KeycodeLeft:  input.KeyLeft,
	sdl.KeycodeDown:  input.KeyDown,
	sdl.KeycodeUp:    input.KeyUp,

	sdl.KeycodeF1:  input.KeyF1,
	sdl.KeycodeF2:  input.KeyF2,
	sdl.KeycodeF3:  input.KeyF3,
	sdl.KeycodeF4:  input.KeyF4,
	sdl.KeycodeF5:  input.KeyF5,
	sdl.KeycodeF6:  input.KeyF6,
	sdl.KeycodeF7:  input.KeyF7,
	sdl.KeycodeF8:  input.KeyF8,
	sdl.KeycodeF9:  input.KeyF9,
	sdl.KeycodeF10: input.KeyF10,
	sdl.KeycodeF11: input.KeyF11,
	sdl.KeycodeF12: input.KeyF12,

	sdl.KeycodeCapsLock:    input.KeyCaps,
	sdl.KeycodeNumLock:     input.KeyNumLock,
	sdl.KeycodeScrollLock:  input.KeyScrollLock,
	sdl.KeycodePrintScreen: input.KeyPrint,

	sdl.KeycodeLShift: input.KeyLeftShift,
	sdl.KeycodeRShift: input.KeyRightShift,
	sdl.KeycodeLCtrl:  input.KeyLeftControl,
	sdl.KeycodeRCtrl:  input.KeyRightControl,
	sdl.KeycodeLAlt:   input.KeyLeftAlt,
	sdl.KeycodeRAlt:   input.KeyRightAlt,
	sdl.KeycodeLGui:   input.KeyLeftSuper,
	sdl.KeycodeRGui:   input.KeyRightSuper,

	sdl.KeycodeApplication: input.KeyMenu,

	sdl.KeycodeMute:       input.KeyVolumeMute,
	sdl.KeycodeVolumeUp:   input.KeyVolumeUp,
	sdl.KeycodeVolumeDown: input.KeyVolumeDown,

	sdl.KeycodeSemicolon:    input.KeySemicolon,
	sdl.KeycodeEquals:       input.KeyEquals,
	sdl.KeycodeComma:        input.KeyComma,
	sdl.KeycodeMinus:        input.KeyMinus,
	sdl.KeycodePeriod:       input.KeyPeriod,
	sdl.KeycodeSlash:        input.KeySlash,
	sdl.KeycodeBackquote:    input.KeyGrave,
	sdl.KeycodeLeftBracket:  input.KeyLeftBracket,
	sdl.KeycodeBackslash:    input.KeyBackslash,
	sdl.KeycodeRightBracket: input.KeyRightBracket,
	sdl.KeycodeApostrophe:   input.KeyApostrophe,
}

func keyFromCode(code sdl.Keycode) (input.Key, bool) {
	key, ok := keymap[code]
	return key, ok
}

// keyFromRune is the best-effort reverse mapping used to tag text-input
// notifications with a key identity. Runes with no obvious key map to
// KeyNone.
func keyFromRune(r rune) input.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.Key(r-'A')
	case r >= '0' && r <= '9':
		return input.KeyD0 + input.Key(r-'0')
	}
	switch r {
	case ' ':
		return input.KeySpace
	case '\b':
		return input.KeyBack
	case '\t':
		return input.KeyTab
	case '\r', '\n':
		return input.KeyEnter
	case 0x1B:
		return input.KeyEscape
	case 0x7F:
		return input.KeyDelete
	}
	return input.KeyNone
}
