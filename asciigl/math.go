package asciigl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Scalar is the numeric type used throughout the pipeline.
type Scalar = float32

// Vec3 is an object or camera space point.
type Vec3 = mgl32.Vec3

// V3 builds a Vec3.
func V3(x, y, z Scalar) Vec3 { return Vec3{x, y, z} }

// Rotation is the per-frame orientation of the cube, in radians.
type Rotation struct {
	X Scalar
	Y Scalar
}

// Advance returns r moved forward by one frame.
func (r Rotation) Advance(dx, dy Scalar) Rotation {
	return Rotation{X: r.X + dx, Y: r.Y + dy}
}

// Rotate applies a rotation about the X axis by r.X followed by a rotation about
// the Y axis by r.Y.
func Rotate(v Vec3, r Rotation) Vec3 {
	v = mgl32.Rotate3DX(r.X).Mul3x1(v)
	return mgl32.Rotate3DY(r.Y).Mul3x1(v)
}

// TransformAll rotates every vertex of src into a new slice. src is not modified.
func TransformAll(src []Vec3, r Rotation) []Vec3 {
	rx := mgl32.Rotate3DX(r.X)
	ry := mgl32.Rotate3DY(r.Y)
	out := make([]Vec3, len(src))
	for i, v := range src {
		out[i] = ry.Mul3x1(rx.Mul3x1(v))
	}
	return out
}

func degToRad(deg Scalar) Scalar { return deg * math32.Pi / 180 }
