package nanogui

import "golang.org/x/text/unicode/runenames"

// utf8Lead holds the UTF-8 lead-byte marker for each sequence length.
// Index 1 is the single-byte form (no marker).
var utf8Lead = [7]byte{0, 0x00, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC}

// EncodeCodepoint encodes a single codepoint as UTF-8.
//
// It returns a fixed 8-byte buffer holding the encoded bytes, the
// number of bytes written, and an error. seq[n] is always a NUL
// terminator, so seq[:n] is the encoded sequence and the buffer can
// also be handed to C-string APIs unmodified.
//
// Codepoints up to 0x7fffffff are accepted: values beyond the Unicode
// ceiling of 0x10FFFF use the obsolete 5- and 6-byte forms from the
// original UTF-8 definition. Icon fonts that pack glyphs into those
// planes depend on this, so the extended range is deliberate.
// Negative values and values above 0x7fffffff return
// ErrInvalidCodepoint.
func EncodeCodepoint(c int64) (seq [8]byte, n int, err error) {
	switch {
	case c < 0:
		return seq, 0, ErrInvalidCodepoint
	case c < 0x80:
		n = 1
	case c < 0x800:
		n = 2
	case c < 0x10000:
		n = 3
	case c < 0x200000:
		n = 4
	case c < 0x4000000:
		n = 5
	case c <= 0x7fffffff:
		n = 6
	default:
		return seq, 0, ErrInvalidCodepoint
	}

	// Continuation bytes carry 6 payload bits each, written from the
	// last position backward. Whatever remains goes into the lead byte.
	v := uint32(c)
	for i := n - 1; i > 0; i-- {
		seq[i] = 0x80 | byte(v&0x3f)
		v >>= 6
	}
	seq[0] = utf8Lead[n] | byte(v)
	// seq[n] is the NUL terminator, supplied by the zeroed array.
	return seq, n, nil
}

// CodepointString encodes a single codepoint as a UTF-8 string.
// It returns the empty string for codepoints EncodeCodepoint rejects.
func CodepointString(c int64) string {
	seq, n, err := EncodeCodepoint(c)
	if err != nil {
		return ""
	}
	return string(seq[:n])
}

// CodepointName returns the Unicode name of a codepoint, or the empty
// string if the codepoint is outside the Unicode range or unnamed.
// Intended for diagnostics when working with icon-font codepoints.
func CodepointName(c int64) string {
	if c < 0 || c > 0x10FFFF {
		return ""
	}
	return runenames.Name(rune(c))
}
