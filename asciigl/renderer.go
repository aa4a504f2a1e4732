package asciigl

// Renderer draws the cube for a given Rotation.
//
// A Renderer carries only configuration; it is safe to reuse and holds no
// state between frames.
type Renderer struct {
	Projector Projector
	Ramp      ShadeRamp

	vertices []Vec3
	faces    []Face
}

// NewRenderer returns a renderer for the unit cube.
func NewRenderer(p Projector, ramp ShadeRamp) *Renderer {
	if ramp == "" {
		ramp = DefaultRamp
	}
	return &Renderer{
		Projector: p,
		Ramp:      ramp,
		vertices:  CubeVertices(),
		faces:     CubeFaces(),
	}
}

func (r *Renderer) raster() Raster {
	return Raster{Ramp: r.Ramp, CameraDistance: r.Projector.CameraDistance}
}

// Render returns a freshly allocated frame of the cube at rot.
func (r *Renderer) Render(rot Rotation) *Frame {
	f := NewFrame(r.Projector.Width, r.Projector.Height)
	r.draw(f, rot, r.faces)
	return f
}

// RenderInto resets f and draws the cube at rot into it. f must match the
// projector size.
func (r *Renderer) RenderInto(f *Frame, rot Rotation) {
	f.Reset()
	r.draw(f, rot, r.faces)
}

// RenderFaces is Render restricted to the given faces.
func (r *Renderer) RenderFaces(rot Rotation, faces ...int) *Frame {
	sel := make([]Face, 0, len(faces))
	for _, i := range faces {
		if i < 0 || i >= len(r.faces) {
			continue
		}
		sel = append(sel, r.faces[i])
	}
	f := NewFrame(r.Projector.Width, r.Projector.Height)
	r.draw(f, rot, sel)
	return f
}

func (r *Renderer) draw(f *Frame, rot Rotation, faces []Face) {
	pts := r.Projector.ProjectAll(TransformAll(r.vertices, rot))
	ras := r.raster()
	for _, face := range faces {
		for _, tri := range face.Triangles() {
			ras.DrawTriangle(f, pts[tri[0]], pts[tri[1]], pts[tri[2]])
		}
	}
}
