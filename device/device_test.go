package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFramebufferHighDPI(t *testing.T) {
	x, y := toFramebuffer(150, 120, 100, 100, 800, 600, 1600, 1200)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 40.0, y)
}

func TestToFramebufferOutsideWindowIsNotClamped(t *testing.T) {
	x, y := toFramebuffer(50, 900, 100, 100, 800, 600, 800, 600)
	assert.Equal(t, -50.0, x)
	assert.Equal(t, 800.0, y)
}

func TestToFramebufferZeroSizedWindow(t *testing.T) {
	x, y := toFramebuffer(10, 20, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}

func TestSurfaceCreationErrorUnwraps(t *testing.T) {
	cause := errors.New("no display")
	err := &SurfaceCreationError{Op: "sdl.Init()", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "sdl.Init()")
}

func TestInfoFields(t *testing.T) {
	info := Info{Vendor: "Mesa", MaxTextureSize: 16384}
	fields := info.Fields()
	assert.Equal(t, "Mesa", fields["vendor"])
	assert.Equal(t, int32(16384), fields["max_texture_size"])
}
