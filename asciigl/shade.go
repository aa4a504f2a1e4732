package asciigl

import "github.com/chewxy/math32"

// DefaultRamp orders glyphs from sparsest to densest.
const DefaultRamp ShadeRamp = ".:-=+*#%@"

// ShadeRamp maps quantized depth to a glyph. It is indexed by byte and is
// expected to hold printable ASCII. Indices clamp to len-2, so the last byte is
// never selected.
type ShadeRamp string

// Index returns the ramp position for a fragment at camera space depth,
// clamped into [0, len-2].
func (r ShadeRamp) Index(depth, cameraDistance Scalar) int {
	hi := len(r) - 2
	if hi < 0 {
		hi = 0
	}
	idx := math32.Floor((depth - cameraDistance) * 2)
	// Clamp in float space so Inf and huge values never overflow int.
	if !(idx >= 0) {
		return 0
	}
	if idx > Scalar(hi) {
		return hi
	}
	return int(idx)
}

// Glyph returns the shading glyph for depth.
func (r ShadeRamp) Glyph(depth, cameraDistance Scalar) byte {
	if len(r) == 0 {
		return ' '
	}
	return r[r.Index(depth, cameraDistance)]
}
