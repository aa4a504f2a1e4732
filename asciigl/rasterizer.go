package asciigl

// EdgeFunction returns the signed area term of p relative to the directed edge
// a→b. Its sign tells which side of the edge p lies on.
func EdgeFunction(a, b, p Point) Scalar {
	return Scalar((p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X))
}

// Inside reports whether p is covered by triangle p0 p1 p2, in either winding.
func Inside(p0, p1, p2, p Point) bool {
	_, ok := interpolate(p0, p1, p2, p, EdgeFunction(p0, p1, p2))
	return ok
}

// Raster fills triangles into a Frame, keeping the nearest fragment per cell.
type Raster struct {
	Ramp           ShadeRamp
	CameraDistance Scalar
}

// DrawTriangle fills every cell covered by p0 p1 p2.
//
// The bounding box is not clipped to the frame; cells outside it are skipped
// one by one. Zero-area triangles are not special-cased.
func (r Raster) DrawTriangle(f *Frame, p0, p1, p2 Point) {
	minX, maxX := min3(p0.X, p1.X, p2.X), max3(p0.X, p1.X, p2.X)
	minY, maxY := min3(p0.Y, p1.Y, p2.Y), max3(p0.Y, p1.Y, p2.Y)

	area := EdgeFunction(p0, p1, p2)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			z, ok := interpolate(p0, p1, p2, Point{X: x, Y: y}, area)
			if !ok || !f.inBounds(x, y) {
				continue
			}
			idx := y*f.Width + x
			if !(z < f.Depth[idx]) {
				continue
			}
			f.Depth[idx] = z
			f.Glyphs[idx] = r.Ramp.Glyph(z, r.CameraDistance)
		}
	}
}

// interpolate tests p against the triangle and returns its barycentric depth.
//
// The weights w0/area, w1/area, w2/area are applied with the division factored
// out. The integer edge values sum to area exactly, so a triangle of constant
// depth interpolates to exactly that depth.
func interpolate(p0, p1, p2, p Point, area Scalar) (Scalar, bool) {
	w0 := EdgeFunction(p1, p2, p)
	w1 := EdgeFunction(p2, p0, p)
	w2 := EdgeFunction(p0, p1, p)
	if !((w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)) {
		return 0, false
	}
	return (w0*p0.Depth + w1*p1.Depth + w2*p2.Depth) / area, true
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
