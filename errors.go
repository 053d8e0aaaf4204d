package nanogui

import "errors"

// Sentinel errors for the nanogui core types.
var (
	// ErrInvalidCodepoint is returned when a codepoint is negative or
	// exceeds 0x7fffffff, the largest value the 6-byte UTF-8 form can carry.
	ErrInvalidCodepoint = errors.New("nanogui: invalid codepoint")
)
