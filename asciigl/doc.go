// Package asciigl is a small software rasterizer that draws a rotating cube as
// depth-shaded text.
//
// Pipeline (fixed):
//
//	Cube template → Rotate → Project → Fan split → Rasterize → Frame.
//
// A Frame holds a glyph grid and a depth grid of the same size. Both are reset
// for every rendered frame; the only state that survives between frames is the
// Rotation the caller threads through Render.
//
// All math is float32. Projection and barycentric division are not guarded:
// a vertex on the camera plane or a zero-area triangle produces Inf/NaN values
// that fail the depth test instead of being clamped.
package asciigl
