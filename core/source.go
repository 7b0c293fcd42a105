package core

import (
	"errors"
	"io/ioutil"
	"strings"

	"github.com/SAM0619TJ/Tiny-rasterizer/utility/kar"
	"github.com/gobuffalo/packd"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"
)

// Shader source path forms besides plain files
const (
	BuiltinPrefix   = "builtin:"
	archiveSuffix   = ".kar"
	archiveEntrySep = ":"
)

// Source loading errors, wrapped in a ShaderFileError
var (
	ErrEmptySource = errors.New("shader source is empty")
	ErrNoPath      = errors.New("no shader path configured")
	ErrNoBuiltins  = errors.New("no built-in shaders available")
)

// NewSourceLoader creates a loader, builtin may be nil
// when no shaders are embedded
func NewSourceLoader(builtin packd.Finder, logger log.FieldLogger) *SourceLoader {
	return &SourceLoader{
		builtin: builtin,
		logger:  logger,
	}
}

// SourceLoader reads shader sources. A path is either
// "builtin:<name>" for an embedded shader, "<pack>.kar:<entry>"
// for an entry of a kar shader pack, or a plain file path.
type SourceLoader struct {
	builtin packd.Finder
	logger  log.FieldLogger
}

// Load returns the full source text at path
func (l *SourceLoader) Load(path string) (string, error) {
	if path == "" {
		return "", &ShaderFileError{Path: path, Err: ErrNoPath}
	}

	source, err := l.read(path)
	if err != nil {
		return "", &ShaderFileError{Path: path, Err: err}
	}
	if len(source) == 0 {
		return "", &ShaderFileError{Path: path, Err: ErrEmptySource}
	}

	l.logger.WithFields(log.Fields{
		"path":  path,
		"bytes": len(source),
	}).Debug("read shader source")
	return source, nil
}

// LoadScene returns the vertex and fragment sources of a scene
func (l *SourceLoader) LoadScene(scene Scene) (string, string, error) {
	vertex, err := l.Load(scene.VertexShader)
	if err != nil {
		return "", "", err
	}
	fragment, err := l.Load(scene.FragmentShader)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func (l *SourceLoader) read(path string) (string, error) {
	if strings.HasPrefix(path, BuiltinPrefix) {
		if l.builtin == nil {
			return "", ErrNoBuiltins
		}
		return l.builtin.FindString(strings.TrimPrefix(path, BuiltinPrefix))
	}

	if archive, entry, ok := splitArchivePath(path); ok {
		return readArchiveEntry(archive, entry)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// splitArchivePath splits "shaders.kar:plasma.frag" into its parts
func splitArchivePath(path string) (string, string, bool) {
	idx := strings.Index(path, archiveSuffix+archiveEntrySep)
	if idx < 0 {
		return "", "", false
	}
	archive := path[:idx+len(archiveSuffix)]
	entry := path[idx+len(archiveSuffix)+len(archiveEntrySep):]
	if entry == "" {
		return "", "", false
	}
	return archive, entry, true
}

func readArchiveEntry(archive, entry string) (string, error) {
	r, err := mmap.Open(archive)
	if err != nil {
		return "", err
	}
	defer r.Close()

	ar, err := kar.Open(r)
	if err != nil {
		return "", err
	}

	data, err := ar.ReadAll(entry)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
