package asciigl

// Face is a planar quad given as four indices into a vertex list.
type Face [4]int

var cubeVertices = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeFaces = [6]Face{
	{0, 1, 2, 3}, // back
	{4, 5, 6, 7}, // front
	{0, 1, 5, 4}, // bottom
	{2, 3, 7, 6}, // top
	{1, 2, 6, 5}, // right
	{0, 3, 7, 4}, // left
}

// Faces by name, for callers that rasterize a single side.
const (
	FaceBack = iota
	FaceFront
	FaceBottom
	FaceTop
	FaceRight
	FaceLeft
)

// CubeVertices returns a copy of the unit cube corners.
func CubeVertices() []Vec3 {
	out := make([]Vec3, len(cubeVertices))
	copy(out, cubeVertices[:])
	return out
}

// CubeFaces returns a copy of the six cube faces.
func CubeFaces() []Face {
	out := make([]Face, len(cubeFaces))
	copy(out, cubeFaces[:])
	return out
}

// Triangles splits a quad into the fan [0,1,2], [0,2,3].
func (f Face) Triangles() [2][3]int {
	return [2][3]int{
		{f[0], f[1], f[2]},
		{f[0], f[2], f[3]},
	}
}
