package renderer

import (
	"fmt"

	"github.com/SAM0619TJ/Tiny-rasterizer/core"
)

// CompilationError is returned when the GL compiler rejects a shader stage
type CompilationError struct {
	Stage core.ShaderType
	Log   string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError is returned when the shader stages fail to link
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program linking failed: %s", e.Log)
}
