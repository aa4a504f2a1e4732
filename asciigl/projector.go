package asciigl

import "github.com/chewxy/math32"

// Point is a projected vertex: integer screen cell plus camera space depth.
type Point struct {
	X, Y  int
	Depth Scalar
}

// Projector maps camera space points onto a Width x Height character grid.
//
// The camera sits CameraDistance units along +z from the origin and looks at it
// with a FOV degree field of view. CubeSize scales object units to cells.
type Projector struct {
	Width          int
	Height         int
	CubeSize       Scalar
	CameraDistance Scalar
	FOV            Scalar
}

func (p Projector) aspect() Scalar {
	return Scalar(p.Width) / Scalar(p.Height)
}

func (p Projector) fovScale() Scalar {
	return 1 / math32.Tan(degToRad(p.FOV)*0.5)
}

// Scale returns the object-to-cell scale factor at camera space depth cameraZ.
func (p Projector) Scale(cameraZ Scalar) Scalar {
	return p.fovScale() / cameraZ * p.CubeSize
}

// Project converts a point to screen space. Screen y grows downwards.
//
// Coordinates are truncated toward zero. A point with z == -CameraDistance
// divides by zero and is not guarded.
func (p Projector) Project(v Vec3) Point {
	z := v.Z() + p.CameraDistance
	scale := p.Scale(z)
	cx := Scalar(p.Width / 2)
	cy := Scalar(p.Height / 2)
	return Point{
		X:     int(cx + v.X()*scale*p.aspect()),
		Y:     int(cy - v.Y()*scale),
		Depth: z,
	}
}

// ProjectAll projects every vertex of src into a new slice.
func (p Projector) ProjectAll(src []Vec3) []Point {
	out := make([]Point, len(src))
	for i, v := range src {
		out[i] = p.Project(v)
	}
	return out
}
