package device

import (
	"github.com/SAM0619TJ/Tiny-rasterizer/core"
	"github.com/go-gl/gl/v4.1-core/gl"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// NewSDLSurface creates a window with a current OpenGL context. The GPU
// configuration is only read here. Everything created before a failure
// is released again before the error is returned.
func NewSDLSurface(win core.WindowConfiguration, gpu core.GPUConfiguration, logger log.FieldLogger) (*SDLSurface, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, &SurfaceCreationError{Op: "sdl.Init()", Err: err}
	}

	s := &SDLSurface{logger: logger}
	if err := s.create(win, gpu); err != nil {
		s.Destroy()
		return nil, err
	}

	s.info = queryInfo()
	logger.WithFields(s.info.Fields()).Info("opengl context created")
	return s, nil
}

// SDLSurface is an SDL window owning an OpenGL context
type SDLSurface struct {
	window  *sdl.Window
	context sdl.GLContext
	info    Info
	logger  log.FieldLogger

	closeRequested bool
}

func (s *SDLSurface) create(win core.WindowConfiguration, gpu core.GPUConfiguration) error {
	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, gpu.OpenGLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, gpu.OpenGLMinor},
		{sdl.GL_CONTEXT_PROFILE_MASK, int(sdl.GL_CONTEXT_PROFILE_CORE)},
		{sdl.GL_CONTEXT_FLAGS, int(sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_MULTISAMPLEBUFFERS, boolToInt(gpu.Samples > 0)},
		{sdl.GL_MULTISAMPLESAMPLES, gpu.Samples},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return &SurfaceCreationError{Op: "sdl.GLSetAttribute()", Err: err}
		}
	}

	window, err := sdl.CreateWindow(win.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(win.Width),
		int32(win.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return &SurfaceCreationError{Op: "sdl.CreateWindow()", Err: err}
	}
	s.window = window

	context, err := window.GLCreateContext()
	if err != nil {
		return &SurfaceCreationError{Op: "sdl.GLCreateContext()", Err: err}
	}
	s.context = context

	if err := window.GLMakeCurrent(context); err != nil {
		return &SurfaceCreationError{Op: "sdl.GLMakeCurrent()", Err: err}
	}

	if err := gl.Init(); err != nil {
		return &SurfaceCreationError{Op: "gl.Init()", Err: err}
	}

	if err := sdl.GLSetSwapInterval(boolToInt(win.VSync)); err != nil {
		s.logger.WithError(err).Warn("could not change swap interval")
	}

	width, height := window.GLGetDrawableSize()
	gl.Viewport(0, 0, width, height)

	// a single screen quad needs none of these
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.STENCIL_TEST)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)

	return nil
}

func queryInfo() Info {
	var info Info
	info.Vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	info.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	info.Version = gl.GoStr(gl.GetString(gl.VERSION))
	info.GLSLVersion = gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &info.MaxTextureSize)
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &info.MaxVertexAttribs)
	return info
}

// Info returns the device info queried at creation
func (s *SDLSurface) Info() Info {
	return s.info
}

// ShouldClose implements core.Surface
func (s *SDLSurface) ShouldClose() bool {
	return s.closeRequested
}

// SwapBuffers implements core.Surface
func (s *SDLSurface) SwapBuffers() {
	s.window.GLSwap()
}

// PollEvents implements core.Surface
func (s *SDLSurface) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			s.closeRequested = true
		case *sdl.WindowEvent:
			if et.Event == sdl.WINDOWEVENT_CLOSE {
				s.closeRequested = true
			}
		}
	}
}

// FramebufferSize implements core.Surface
func (s *SDLSurface) FramebufferSize() (int, int) {
	width, height := s.window.GLGetDrawableSize()
	return int(width), int(height)
}

// CursorPosition implements core.Surface. The global cursor position is
// used so the value keeps tracking after the pointer leaves the window.
func (s *SDLSurface) CursorPosition() (float64, float64) {
	cursorX, cursorY, _ := sdl.GetGlobalMouseState()
	originX, originY := s.window.GetPosition()
	windowW, windowH := s.window.GetSize()
	fbW, fbH := s.window.GLGetDrawableSize()
	return toFramebuffer(cursorX, cursorY, originX, originY, windowW, windowH, fbW, fbH)
}

// SetTitle implements core.Surface
func (s *SDLSurface) SetTitle(title string) {
	s.window.SetTitle(title)
}

// Destroy deletes the context and the window and shuts SDL down
func (s *SDLSurface) Destroy() {
	if s == nil {
		return
	}
	if s.context != nil {
		sdl.GLDeleteContext(s.context)
		s.context = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	sdl.Quit()
}
