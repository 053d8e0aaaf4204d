package nanogui

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
)

func TestColor_Layout(t *testing.T) {
	// The GPU upload path depends on Color being exactly four
	// contiguous float32 channels in RGBA order.
	if got := unsafe.Sizeof(Color{}); got != 16 {
		t.Fatalf("Sizeof(Color) = %d, want 16", got)
	}

	var c Color
	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"R", unsafe.Offsetof(c.R), 0},
		{"G", unsafe.Offsetof(c.G), 4},
		{"B", unsafe.Offsetof(c.B), 8},
		{"A", unsafe.Offsetof(c.A), 12},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("Offsetof(%s) = %d, want %d", o.name, o.got, o.want)
		}
	}
}

func TestColor_Bytes(t *testing.T) {
	c := RGBA(0.25, 0.5, 0.75, 1)
	buf := c.Bytes()

	if len(buf) != 16 {
		t.Fatalf("len(Bytes()) = %d, want 16", len(buf))
	}

	want := []float32{0.25, 0.5, 0.75, 1}
	for i, w := range want {
		got := math.Float32frombits(binary.NativeEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("channel %d = %v, want %v", i, got, w)
		}
	}
}

func TestColor_BytesAliases(t *testing.T) {
	// Bytes must be a view of the color, not a copy.
	c := Black
	buf := c.Bytes()
	c.R = 1
	if got := math.Float32frombits(binary.NativeEndian.Uint32(buf[0:])); got != 1 {
		t.Errorf("after mutating c.R, buf reads %v, want 1", got)
	}
}

func TestColor_GPURoundtrip(t *testing.T) {
	c := RGBA(0.1, 0.2, 0.3, 0.4)
	g := c.GPU()

	want := gputypes.Color{
		R: float64(float32(0.1)),
		G: float64(float32(0.2)),
		B: float64(float32(0.3)),
		A: float64(float32(0.4)),
	}
	if g != want {
		t.Errorf("GPU() = %v, want %v", g, want)
	}

	if got := FromGPU(g); got != c {
		t.Errorf("FromGPU(GPU()) = %v, want %v", got, c)
	}
}
