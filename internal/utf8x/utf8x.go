// Package utf8x decodes UTF-8 scalars from push-style native text buffers.
//
// It is intentionally not a drop-in for unicode/utf8: native text events
// hand us whatever the backend buffered, and the contract here is purely
// structural (lead-byte classification plus continuation-range checks).
// Overlong forms and values beyond the 16-bit plane decode successfully so
// the caller can apply its own representability filter.
package utf8x

// Failure is returned with size 0 when a sequence is not decodable. A
// literal U+FFFD in the input decodes to the same rune but with size 3.
const Failure rune = 0xFFFD

// DecodeRune decodes one code point from the start of p.
//
// On success it returns the code point and the number of bytes consumed
// (1 to 4). On a malformed sequence (invalid lead byte, continuation byte
// outside [0x80, 0xC0), or truncated input) it returns (Failure, 0).
func DecodeRune(p []byte) (rune, int) {
	if len(p) == 0 {
		return Failure, 0
	}

	lead := p[0]
	var size int
	var r rune
	switch {
	case lead < 0x80:
		return rune(lead), 1
	case lead&0xE0 == 0xC0:
		size = 2
		r = rune(lead & 0x1F)
	case lead&0xF0 == 0xE0:
		size = 3
		r = rune(lead & 0x0F)
	case lead&0xF8 == 0xF0:
		size = 4
		r = rune(lead & 0x07)
	default:
		// Stray continuation byte or a 0xF8+ lead.
		return Failure, 0
	}

	if len(p) < size {
		return Failure, 0
	}
	for _, c := range p[1:size] {
		if c < 0x80 || c >= 0xC0 {
			return Failure, 0
		}
		r = r<<6 | rune(c&0x3F)
	}
	return r, size
}
