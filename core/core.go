package core

import (
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Surface describes a window with a current rendering context.
// All methods are called from the thread that owns the context.
type Surface interface {
	// ShouldClose reports whether a close was requested
	// for the window. Only updated by PollEvents.
	ShouldClose() bool

	// SwapBuffers presents the back buffer
	SwapBuffers()

	// PollEvents drains pending window events
	PollEvents()

	// FramebufferSize returns the drawable size in pixels
	FramebufferSize() (int, int)

	// CursorPosition returns the cursor position in framebuffer
	// pixels, relative to the top-left corner. It is not clamped
	// to the window bounds.
	CursorPosition() (float64, float64)

	// SetTitle replaces the window title
	SetTitle(string)
}

// Program describes a linked shader program together with
// the screen quad it draws.
type Program interface {
	// Clear clears the color buffer
	Clear()

	// Use binds the program, must precede uniform updates and draws
	Use()

	// SetFloat sets a float uniform
	SetFloat(name string, value float32)

	// SetVec2 sets a vec2 uniform
	SetVec2(name string, value glm.Vec2)

	// DrawQuad draws the full screen quad
	DrawQuad()
}

// Clock reports the time elapsed since it was started.
type Clock interface {
	Elapsed() time.Duration
}

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)

func (t ShaderType) String() string {
	switch t {
	case VertexShaderType:
		return "VERTEX"
	case FragmentShaderType:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// Uniform names fed to every fragment shader.
const (
	UniformTime       = "iTime"
	UniformResolution = "iResolution"
	UniformMouse      = "iMouse"
)
