// Package nanogui provides the core value types shared by the nanogui
// widget toolkit and its rendering backends.
//
// # Overview
//
// The package is the leaf dependency of the toolkit: it has no knowledge
// of widgets, layouts, or windows. It contributes two things:
//
//   - [Color]: a four-channel float32 RGBA color with constructors for
//     the input domains widgets work in (float channels, 0-255 integer
//     channels, gray intensity, hex strings, SVG color names), plus a
//     perceptual-luminance Contrasting helper for picking readable
//     label colors against arbitrary fills.
//   - [EncodeCodepoint]: a UTF-8 encoder for a single codepoint,
//     including the legacy 5- and 6-byte forms up to 0x7fffffff that
//     icon fonts in the wild still rely on.
//
// # Quick Start
//
//	import "github.com/Reymenta-Visuals/nanogui"
//
//	fill := nanogui.RGB8(52, 152, 219)
//	label := fill.Contrasting() // white or black, whichever reads better
//
//	seq, n, err := nanogui.EncodeCodepoint(0x1F680)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyph := string(seq[:n])
//
// # Renderer interop
//
// Color is guaranteed to be four contiguous float32 values in RGBA
// order with no padding. (*Color).Bytes exposes that layout directly
// for GPU buffer uploads, and (Color).GPU converts to the WebGPU
// clear-color struct used by the gogpu backend.
package nanogui
