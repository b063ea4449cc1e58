//go:build darwin || freebsd || linux

package sdl

// Keycode is a layout-dependent native key identifier. Printable keys
// carry their ASCII value; everything else is the scancode with the high
// mask bit set.
type Keycode int32

const scancodeMask Keycode = 1 << 30

const (
	KeycodeUnknown   Keycode = 0
	KeycodeBackspace Keycode = 8
	KeycodeTab       Keycode = 9
	KeycodeReturn    Keycode = 13
	KeycodeEscape    Keycode = 27
	KeycodeSpace     Keycode = 32

	KeycodeApostrophe Keycode = 39
	KeycodeComma      Keycode = 44
	KeycodeMinus      Keycode = 45
	KeycodePeriod     Keycode = 46
	KeycodeSlash      Keycode = 47

	Keycode0 Keycode = 48
	Keycode1 Keycode = 49
	Keycode2 Keycode = 50
	Keycode3 Keycode = 51
	Keycode4 Keycode = 52
	Keycode5 Keycode = 53
	Keycode6 Keycode = 54
	Keycode7 Keycode = 55
	Keycode8 Keycode = 56
	Keycode9 Keycode = 57

	KeycodeSemicolon Keycode = 59
	KeycodeEquals    Keycode = 61

	KeycodeLeftBracket  Keycode = 91
	KeycodeBackslash    Keycode = 92
	KeycodeRightBracket Keycode = 93
	KeycodeBackquote    Keycode = 96

	KeycodeA Keycode = 97
	KeycodeB Keycode = 98
	KeycodeC Keycode = 99
	KeycodeD Keycode = 100
	KeycodeE Keycode = 101
	KeycodeF Keycode = 102
	KeycodeG Keycode = 103
	KeycodeH Keycode = 104
	KeycodeI Keycode = 105
	KeycodeJ Keycode = 106
	KeycodeK Keycode = 107
	KeycodeL Keycode = 108
	KeycodeM Keycode = 109
	KeycodeN Keycode = 110
	KeycodeO Keycode = 111
	KeycodeP Keycode = 112
	KeycodeQ Keycode = 113
	KeycodeR Keycode = 114
	KeycodeS Keycode = 115
	KeycodeT Keycode = 116
	KeycodeU Keycode = 117
	KeycodeV Keycode = 118
	KeycodeW Keycode = 119
	KeycodeX Keycode = 120
	KeycodeY Keycode = 121
	KeycodeZ Keycode = 122

	KeycodeDelete Keycode = 127

	KeycodeCapsLock Keycode = 57 | scancodeMask

	KeycodeF1  Keycode = 58 | scancodeMask
	KeycodeF2  Keycode = 59 | scancodeMask
	KeycodeF3  Keycode = 60 | scancodeMask
	KeycodeF4  Keycode = 61 | scancodeMask
	KeycodeF5  Keycode = 62 | scancodeMask
	KeycodeF6  Keycode = 63 | scancodeMask
	KeycodeF7  Keycode = 64 | scancodeMask
	KeycodeF8  Keycode = 65 | scancodeMask
	KeycodeF9  Keycode = 66 | scancodeMask
	KeycodeF10 Keycode = 67 | scancodeMask
	KeycodeF11 Keycode = 68 | scancodeMask
	KeycodeF12 Keycode = 69 | scancodeMask

	KeycodePrintScreen Keycode = 70 | scancodeMask
	KeycodeScrollLock  Keycode = 71 | scancodeMask
	KeycodePause       Keycode = 72 | scancodeMask
	KeycodeInsert      Keycode = 73 | scancodeMask
	KeycodeHome        Keycode = 74 | scancodeMask
	KeycodePageUp      Keycode = 75 | scancodeMask
	KeycodeEnd         Keycode = 77 | scancodeMask
	KeycodePageDown    Keycode = 78 | scancodeMask
	KeycodeRight       Keycode = 79 | scancodeMask
	KeycodeLeft        Keycode = 80 | scancodeMask
	KeycodeDown        Keycode = 81 | scancodeMask
	KeycodeUp          Keycode = 82 | scancodeMask

	KeycodeNumLock    Keycode = 83 | scancodeMask
	KeycodeKPDivide   Keycode = 84 | scancodeMask
	KeycodeKPMultiply Keycode = 85 | scancodeMask
	KeycodeKPMinus    Keycode = 86 | scancodeMask
	KeycodeKPPlus     Keycode = 87 | scancodeMask
	KeycodeKPEnter    Keycode = 88 | scancodeMask
	KeycodeKP1        Keycode = 89 | scancodeMask
	KeycodeKP2        Keycode = 90 | scancodeMask
	KeycodeKP3        Keycode = 91 | scancodeMask
	KeycodeKP4        Keycode = 92 | scancodeMask
	KeycodeKP5        Keycode = 93 | scancodeMask
	KeycodeKP6        Keycode = 94 | scancodeMask
	KeycodeKP7        Keycode = 95 | scancodeMask
	KeycodeKP8        Keycode = 96 | scancodeMask
	KeycodeKP9        Keycode = 97 | scancodeMask
	KeycodeKP0        Keycode = 98 | scancodeMask
	KeycodeKPPeriod   Keycode = 99 | scancodeMask

	KeycodeApplication Keycode = 101 | scancodeMask

	KeycodeMute       Keycode = 127 | scancodeMask
	KeycodeVolumeUp   Keycode = 128 | scancodeMask
	KeycodeVolumeDown Keycode = 129 | scancodeMask

	KeycodeLCtrl  Keycode = 224 | scancodeMask
	KeycodeLShift Keycode = 225 | scancodeMask
	KeycodeLAlt   Keycode = 226 | scancodeMask
	KeycodeLGui   Keycode = 227 | scancodeMask
	KeycodeRCtrl  Keycode = 228 | scancodeMask
	KeycodeRShift Keycode = 229 | scancodeMask
	KeycodeRAlt   Keycode = 230 | scancodeMask
	KeycodeRGui   Keycode = 231 | scancodeMask
)
