// Package input holds the portable input model: key identities, the
// pressed-key set and the mouse snapshot the run loop maintains. All
// mutation happens on the loop thread; consumers read between frames.
package input

import "strconv"

// Key identifies a key in the portable keyboard model. Keys that carry a
// character or control-character meaning use that character's value
// (KeyBack is 0x08, KeyA is 'A'), so a translated key can feed text
// handling directly.
type Key int

const (
	KeyNone   Key = 0
	KeyBack   Key = 8
	KeyTab    Key = 9
	KeyEnter  Key = 13
	KeyCaps   Key = 20
	KeyEscape Key = 27
	KeySpace  Key = 32

	KeyPageUp   Key = 33
	KeyPageDown Key = 34
	KeyEnd      Key = 35
	KeyHome     Key = 36
	KeyLeft     Key = 37
	KeyUp       Key = 38
	KeyRight    Key = 39
	KeyDown     Key = 40
	KeyPrint    Key = 44
	KeyInsert   Key = 45
	KeyDelete   Key = 46

	KeyD0 Key = 48
	KeyD1 Key = 49
	KeyD2 Key = 50
	KeyD3 Key = 51
	KeyD4 Key = 52
	KeyD5 Key = 53
	KeyD6 Key = 54
	KeyD7 Key = 55
	KeyD8 Key = 56
	KeyD9 Key = 57

	KeyA Key = 65
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90

	KeyLeftSuper  Key = 91
	KeyRightSuper Key = 92
	KeyMenu       Key = 93

	KeyNumPad0 Key = 96
	KeyNumPad1 Key = 97
	KeyNumPad2 Key = 98
	KeyNumPad3 Key = 99
	KeyNumPad4 Key = 100
	KeyNumPad5 Key = 101
	KeyNumPad6 Key = 102
	KeyNumPad7 Key = 103
	KeyNumPad8 Key = 104
	KeyNumPad9 Key = 105

	KeyMultiply Key = 106
	KeyAdd      Key = 107
	KeySubtract Key = 109
	KeyDecimal  Key = 110
	KeyDivide   Key = 111

	KeyF1  Key = 112
	KeyF2  Key = 113
	KeyF3  Key = 114
	KeyF4  Key = 115
	KeyF5  Key = 116
	KeyF6  Key = 117
	KeyF7  Key = 118
	KeyF8  Key = 119
	KeyF9  Key = 120
	KeyF10 Key = 121
	KeyF11 Key = 122
	KeyF12 Key = 123

	KeyNumLock    Key = 144
	KeyScrollLock Key = 145

	KeyLeftShift    Key = 160
	KeyRightShift   Key = 161
	KeyLeftControl  Key = 162
	KeyRightControl Key = 163
	KeyLeftAlt      Key = 164
	KeyRightAlt     Key = 165

	KeyVolumeMute Key = 173
	KeyVolumeDown Key = 174
	KeyVolumeUp   Key = 175

	KeySemicolon    Key = 186
	KeyEquals       Key = 187
	KeyComma        Key = 188
	KeyMinus        Key = 189
	KeyPeriod       Key = 190
	KeySlash        Key = 191
	KeyGrave        Key = 192
	KeyLeftBracket  Key = 219
	KeyBackslash    Key = 220
	KeyRightBracket Key = 221
	KeyApostrophe   Key = 222
)

var keyNames = map[Key]string{
	KeyNone:         "None",
	KeyBack:         "Back",
	KeyTab:          "Tab",
	KeyEnter:        "Enter",
	KeyCaps:         "Caps",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyEnd:          "End",
	KeyHome:         "Home",
	KeyLeft:         "Left",
	KeyUp:           "Up",
	KeyRight:        "Right",
	KeyDown:         "Down",
	KeyPrint:        "Print",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyLeftSuper:    "LeftSuper",
	KeyRightSuper:   "RightSuper",
	KeyMenu:         "Menu",
	KeyMultiply:     "Multiply",
	KeyAdd:          "Add",
	KeySubtract:     "Subtract",
	KeyDecimal:      "Decimal",
	KeyDivide:       "Divide",
	KeyNumLock:      "NumLock",
	KeyScrollLock:   "ScrollLock",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
	KeyVolumeMute:   "VolumeMute",
	KeyVolumeDown:   "VolumeDown",
	KeyVolumeUp:     "VolumeUp",
	KeySemicolon:    "Semicolon",
	KeyEquals:       "Equals",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyGrave:        "Grave",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyApostrophe:   "Apostrophe",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyD0 && k <= KeyD9:
		return "D" + string(rune('0'+k-KeyD0))
	case k >= KeyNumPad0 && k <= KeyNumPad9:
		return "NumPad" + string(rune('0'+k-KeyNumPad0))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
