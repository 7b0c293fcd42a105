package device

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Info describes the rendering device behind a created context
type Info struct {
	Vendor           string
	Renderer         string
	Version          string
	GLSLVersion      string
	MaxTextureSize   int32
	MaxVertexAttribs int32
}

// Fields returns the info as log fields
func (i Info) Fields() log.Fields {
	return log.Fields{
		"vendor":             i.Vendor,
		"renderer":           i.Renderer,
		"version":            i.Version,
		"glsl":               i.GLSLVersion,
		"max_texture_size":   i.MaxTextureSize,
		"max_vertex_attribs": i.MaxVertexAttribs,
	}
}

// SurfaceCreationError is returned when the window or its
// context can't be created
type SurfaceCreationError struct {
	Op  string
	Err error
}

func (e *SurfaceCreationError) Error() string {
	return fmt.Sprintf("surface creation failed in %s: %s", e.Op, e.Err)
}

func (e *SurfaceCreationError) Unwrap() error {
	return e.Err
}

// toFramebuffer converts a global cursor position in window coordinates
// to framebuffer pixels relative to the window's top-left corner.
// Positions outside the window are kept as they are.
func toFramebuffer(cursorX, cursorY, originX, originY, windowW, windowH, fbW, fbH int32) (float64, float64) {
	scaleX, scaleY := 1.0, 1.0
	if windowW > 0 && windowH > 0 {
		scaleX = float64(fbW) / float64(windowW)
		scaleY = float64(fbH) / float64(windowH)
	}
	return float64(cursorX-originX) * scaleX, float64(cursorY-originY) * scaleY
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
