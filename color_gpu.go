package nanogui

import (
	"unsafe"

	"github.com/gogpu/gputypes"
)

// The render backend uploads colors as raw vec4<f32> data, so Color
// must be exactly four contiguous float32 values with no padding.
// This fails to compile if the struct layout ever changes.
var _ [16]byte = [unsafe.Sizeof(Color{})]byte{}

// Bytes returns the color's four float32 channels as a 16-byte slice
// in RGBA order, suitable for writing into a GPU uniform or vertex
// buffer. The slice aliases c: no copy is made, and mutating c is
// visible through the slice.
func (c *Color) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(c)), int(unsafe.Sizeof(*c))) //nolint:gosec // fixed-layout struct serialization
}

// GPU converts the color to the WebGPU color struct used for render
// pass clear values and blend constants.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}

// FromGPU converts a WebGPU color struct back to a Color.
func FromGPU(c gputypes.Color) Color {
	return Color{
		R: float32(c.R),
		G: float32(c.G),
		B: float32(c.B),
		A: float32(c.A),
	}
}
