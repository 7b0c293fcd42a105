package renderer

import (
	"errors"
	"testing"

	"github.com/SAM0619TJ/Tiny-rasterizer/core"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformCacheLooksUpOncePerName(t *testing.T) {
	logger, _ := test.NewNullLogger()
	lookups := map[string]int{}
	cache := newUniformCache(func(name string) int32 {
		lookups[name]++
		return int32(len(name))
	}, logger)

	for i := 0; i < 3; i++ {
		assert.Equal(t, int32(5), cache.Location(core.UniformTime))
		assert.Equal(t, int32(6), cache.Location(core.UniformMouse))
	}

	assert.Equal(t, 1, lookups[core.UniformTime])
	assert.Equal(t, 1, lookups[core.UniformMouse])
}

func TestUniformCacheKeepsInactiveLocations(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	calls := 0
	cache := newUniformCache(func(name string) int32 {
		calls++
		return -1
	}, logger)

	assert.Equal(t, int32(-1), cache.Location("iMissing"))
	assert.Equal(t, int32(-1), cache.Location("iMissing"))
	assert.Equal(t, 1, calls)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "iMissing", hook.LastEntry().Data["uniform"])
}

func TestErrorMessagesCarryStage(t *testing.T) {
	var err error = &CompilationError{Stage: core.FragmentShaderType, Log: "0:3: syntax error"}
	assert.Contains(t, err.Error(), "FRAGMENT")
	assert.Contains(t, err.Error(), "syntax error")

	var cerr *CompilationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, core.FragmentShaderType, cerr.Stage)

	err = &LinkError{Log: "missing main"}
	assert.Contains(t, err.Error(), "linking failed")
}

func TestCompileRejectsUnknownStage(t *testing.T) {
	_, err := compileShader("void main() {}", core.UnknownShaderType)

	var cerr *CompilationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, core.UnknownShaderType, cerr.Stage)
	assert.Contains(t, err.Error(), "UNKNOWN")
}
