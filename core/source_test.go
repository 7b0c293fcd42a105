package core_test

import (
	"encoding/binary"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SAM0619TJ/Tiny-rasterizer/core"
	"github.com/SAM0619TJ/Tiny-rasterizer/utility/kar"
	"github.com/gobuffalo/packd"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fragmentSource = `#version 410 core
out vec4 fragColor;
void main() { fragColor = vec4(1.0); }
`

func newLoader(t *testing.T, builtin packd.Finder) *core.SourceLoader {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return core.NewSourceLoader(builtin, logger)
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func requireShaderError(t *testing.T, err error, path string) *core.ShaderFileError {
	t.Helper()
	var serr *core.ShaderFileError
	require.True(t, errors.As(err, &serr), "expected ShaderFileError, got %v", err)
	assert.Equal(t, path, serr.Path)
	return serr
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "plasma.frag", fragmentSource)

	source, err := newLoader(t, nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, fragmentSource, source)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.frag")

	_, err := newLoader(t, nil).Load(path)
	serr := requireShaderError(t, err, path)
	assert.True(t, os.IsNotExist(errors.Unwrap(serr)))
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.frag", "")

	_, err := newLoader(t, nil).Load(path)
	requireShaderError(t, err, path)
	assert.True(t, errors.Is(err, core.ErrEmptySource))
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := newLoader(t, nil).Load("")
	requireShaderError(t, err, "")
	assert.True(t, errors.Is(err, core.ErrNoPath))
}

func TestLoadBuiltin(t *testing.T) {
	box := packd.NewMemoryBox()
	require.NoError(t, box.AddString("plasma.frag", fragmentSource))

	loader := newLoader(t, box)
	source, err := loader.Load(core.BuiltinPrefix + "plasma.frag")
	require.NoError(t, err)
	assert.Equal(t, fragmentSource, source)

	_, err = loader.Load(core.BuiltinPrefix + "missing.frag")
	requireShaderError(t, err, core.BuiltinPrefix+"missing.frag")
}

func TestLoadBuiltinWithoutBox(t *testing.T) {
	_, err := newLoader(t, nil).Load(core.BuiltinPrefix + "plasma.frag")
	assert.True(t, errors.Is(err, core.ErrNoBuiltins))
}

func TestLoadArchiveEntry(t *testing.T) {
	builder, err := kar.NewBuilder(kar.Header{Author: "test", Version: 1})
	require.NoError(t, err)
	defer builder.Close()
	require.NoError(t, builder.Add("plasma.frag", strings.NewReader(fragmentSource)))

	archive := filepath.Join(t.TempDir(), "shaders.kar")
	f, err := os.Create(archive)
	require.NoError(t, err)
	_, err = builder.WriteTo(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	loader := newLoader(t, nil)
	source, err := loader.Load(archive + ":plasma.frag")
	require.NoError(t, err)
	assert.Equal(t, fragmentSource, source)

	_, err = loader.Load(archive + ":missing.frag")
	requireShaderError(t, err, archive+":missing.frag")
	assert.True(t, errors.Is(err, kar.ErrNotFound))
}

func TestLoadScene(t *testing.T) {
	vertex := writeFile(t, "quad.vert", "void main() {}\n")
	fragment := writeFile(t, "plasma.frag", fragmentSource)
	loader := newLoader(t, nil)

	v, f, err := loader.LoadScene(core.Scene{VertexShader: vertex, FragmentShader: fragment})
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\n", v)
	assert.Equal(t, fragmentSource, f)

	_, _, err = loader.LoadScene(core.Scene{VertexShader: vertex})
	assert.True(t, errors.Is(err, core.ErrNoPath))
}

func TestLoadCorruptArchive(t *testing.T) {
	sizeField := make([]byte, kar.HeaderSizeNumberLength)
	binary.PutVarint(sizeField, 1<<62)
	data := append(append([]byte{}, kar.Magic[:]...), sizeField...)
	archive := writeFile(t, "corrupt.kar", string(data))

	_, err := newLoader(t, nil).Load(archive + ":plasma.frag")
	requireShaderError(t, err, archive+":plasma.frag")
	assert.True(t, errors.Is(err, kar.ErrFileFormat))
}
