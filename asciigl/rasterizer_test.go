package asciigl

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func testRaster() Raster {
	return Raster{Ramp: DefaultRamp, CameraDistance: 4}
}

func randPoint(rng *rand.Rand, w, h int) Point {
	return Point{
		X:     rng.Intn(w+20) - 10,
		Y:     rng.Intn(h+20) - 10,
		Depth: 2 + rng.Float32()*6,
	}
}

func TestEdgeFunctionSign(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}
	above := Point{X: 5, Y: -3}
	below := Point{X: 5, Y: 3}
	on := Point{X: 7, Y: 0}
	if EdgeFunction(a, b, on) != 0 {
		t.Fatalf("point on edge: %v", EdgeFunction(a, b, on))
	}
	ea, eb := EdgeFunction(a, b, above), EdgeFunction(a, b, below)
	if ea == 0 || eb == 0 || (ea > 0) == (eb > 0) {
		t.Fatalf("sides not separated: above=%v below=%v", ea, eb)
	}
	c := Point{X: 0, Y: 10}
	if EdgeFunction(a, b, c) != -EdgeFunction(a, c, b) {
		t.Fatalf("winding does not flip sign")
	}
}

func TestInsideEitherWinding(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 10, Y: 0}
	p2 := Point{X: 0, Y: 10}
	in := Point{X: 2, Y: 2}
	out := Point{X: 9, Y: 9}
	if !Inside(p0, p1, p2, in) || !Inside(p0, p2, p1, in) {
		t.Fatalf("interior point rejected")
	}
	if Inside(p0, p1, p2, out) || Inside(p0, p2, p1, out) {
		t.Fatalf("exterior point accepted")
	}
	if !Inside(p0, p1, p2, p1) {
		t.Fatalf("vertex rejected")
	}
}

func TestCentroidInside(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 0
	for n < 2000 {
		p0 := randPoint(rng, 80, 40)
		p1 := randPoint(rng, 80, 40)
		p2 := randPoint(rng, 80, 40)
		// Snap so the centroid lands on an integer cell.
		p2.X -= (p0.X + p1.X + p2.X) % 3
		p2.Y -= (p0.Y + p1.Y + p2.Y) % 3
		if EdgeFunction(p0, p1, p2) == 0 {
			continue
		}
		n++
		c := Point{X: (p0.X + p1.X + p2.X) / 3, Y: (p0.Y + p1.Y + p2.Y) / 3}
		if !Inside(p0, p1, p2, c) {
			t.Fatalf("centroid %+v outside %+v %+v %+v", c, p0, p1, p2)
		}
	}
}

func TestDepthBufferHoldsMinimum(t *testing.T) {
	const w, h = 40, 20
	rng := rand.New(rand.NewSource(7))
	ras := testRaster()

	for round := 0; round < 20; round++ {
		f := NewFrame(w, h)
		var tris [][3]Point
		for i := 0; i < 12; i++ {
			tri := [3]Point{randPoint(rng, w, h), randPoint(rng, w, h), randPoint(rng, w, h)}
			if EdgeFunction(tri[0], tri[1], tri[2]) == 0 {
				continue
			}
			tris = append(tris, tri)
			ras.DrawTriangle(f, tri[0], tri[1], tri[2])
		}

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want := math32.Inf(1)
				for _, tri := range tris {
					area := EdgeFunction(tri[0], tri[1], tri[2])
					z, ok := interpolate(tri[0], tri[1], tri[2], Point{X: x, Y: y}, area)
					if ok && z < want {
						want = z
					}
				}
				if got := f.DepthAt(x, y); got != want {
					t.Fatalf("round %d cell (%d,%d): depth %v want %v", round, x, y, got, want)
				}
				wantGlyph := byte(Blank)
				if !math32.IsInf(want, 1) {
					wantGlyph = ras.Ramp.Glyph(want, ras.CameraDistance)
				}
				if got := f.At(x, y); got != wantGlyph {
					t.Fatalf("round %d cell (%d,%d): glyph %q want %q", round, x, y, got, wantGlyph)
				}
			}
		}
	}
}

func TestDrawTriangleInterpolatesDepth(t *testing.T) {
	// Depth over this triangle is the plane 4 + x/5 + 2y/5.
	p0 := Point{X: 0, Y: 0, Depth: 4}
	p1 := Point{X: 10, Y: 0, Depth: 6}
	p2 := Point{X: 0, Y: 10, Depth: 8}
	f := NewFrame(12, 12)
	testRaster().DrawTriangle(f, p0, p1, p2)

	cases := []struct {
		x, y  int
		depth Scalar
		glyph byte
	}{
		{0, 0, 4, '.'},
		{10, 0, 6, '+'},
		{0, 10, 8, '%'},
		{2, 3, 5.6, '='},
		{5, 5, 7, '#'},
	}
	for _, tc := range cases {
		if got := f.DepthAt(tc.x, tc.y); got != tc.depth {
			t.Errorf("depth at (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.depth)
		}
		if got := f.At(tc.x, tc.y); got != tc.glyph {
			t.Errorf("glyph at (%d,%d) = %q, want %q", tc.x, tc.y, got, tc.glyph)
		}
	}
	if got := f.DepthAt(9, 9); !math32.IsInf(got, 1) {
		t.Errorf("cell outside triangle has depth %v", got)
	}
}

func TestDrawTriangleClipsToFrame(t *testing.T) {
	f := NewFrame(10, 10)
	p0 := Point{X: -20, Y: -20, Depth: 5}
	p1 := Point{X: 60, Y: -20, Depth: 5}
	p2 := Point{X: -20, Y: 60, Depth: 5}
	testRaster().DrawTriangle(f, p0, p1, p2)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if f.At(x, y) != '-' || f.DepthAt(x, y) != 5 {
				t.Fatalf("cell (%d,%d) = %q/%v", x, y, f.At(x, y), f.DepthAt(x, y))
			}
		}
	}
}

func TestDrawTriangleNearerWins(t *testing.T) {
	f := NewFrame(20, 20)
	ras := testRaster()
	far := [3]Point{{X: 0, Y: 0, Depth: 7}, {X: 19, Y: 0, Depth: 7}, {X: 0, Y: 19, Depth: 7}}
	near := [3]Point{{X: 0, Y: 0, Depth: 4.5}, {X: 19, Y: 0, Depth: 4.5}, {X: 0, Y: 19, Depth: 4.5}}

	ras.DrawTriangle(f, near[0], near[1], near[2])
	ras.DrawTriangle(f, far[0], far[1], far[2])
	if g := f.At(2, 2); g != ':' {
		t.Fatalf("far triangle overwrote near one: %q", g)
	}

	f.Reset()
	ras.DrawTriangle(f, far[0], far[1], far[2])
	ras.DrawTriangle(f, near[0], near[1], near[2])
	if g := f.At(2, 2); g != ':' {
		t.Fatalf("near triangle did not replace far one: %q", g)
	}
}

func TestDrawTriangleDegenerateWritesNothing(t *testing.T) {
	f := NewFrame(20, 20)
	ras := testRaster()
	ras.DrawTriangle(f, Point{X: 1, Y: 1, Depth: 5}, Point{X: 5, Y: 5, Depth: 5}, Point{X: 9, Y: 9, Depth: 5})
	ras.DrawTriangle(f, Point{X: 3, Y: 3, Depth: 5}, Point{X: 3, Y: 3, Depth: 5}, Point{X: 3, Y: 3, Depth: 5})
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if f.At(x, y) != Blank || !math32.IsInf(f.DepthAt(x, y), 1) {
				t.Fatalf("cell (%d,%d) written: %q/%v", x, y, f.At(x, y), f.DepthAt(x, y))
			}
		}
	}
}
