package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a screen space vertex in normalized device coordinates
type Vertex struct {
	Pos glm.Vec2
}

// VertexStride is the byte size of one Vertex
const VertexStride = int32(unsafe.Sizeof(Vertex{}))

// ScreenQuad covers the whole viewport when drawn
// as a triangle strip in this order
var ScreenQuad = [4]Vertex{
	{Pos: glm.Vec2{-1.0, -1.0}}, // bottom left
	{Pos: glm.Vec2{1.0, -1.0}},  // bottom right
	{Pos: glm.Vec2{-1.0, 1.0}},  // top left
	{Pos: glm.Vec2{1.0, 1.0}},   // top right
}

// QuadVertexCount is the number of vertices in ScreenQuad
const QuadVertexCount = int32(len(ScreenQuad))

// Flatten returns the positions packed for a vertex buffer upload
func Flatten(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*2)
	for _, v := range vertices {
		data = append(data, v.Pos.X(), v.Pos.Y())
	}
	return data
}
