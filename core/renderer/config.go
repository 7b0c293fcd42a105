package renderer

import glm "github.com/go-gl/mathgl/mgl32"

// Configuration describes the renderer configuration
type Configuration struct {
	// ClearColor fills the color buffer before each frame
	ClearColor glm.Vec4
}

// DefaultConfiguration clears to opaque black
var DefaultConfiguration = Configuration{
	ClearColor: glm.Vec4{0, 0, 0, 1},
}
