package renderer

import (
	"strings"

	"github.com/SAM0619TJ/Tiny-rasterizer/core"
	"github.com/SAM0619TJ/Tiny-rasterizer/model"
	"github.com/go-gl/gl/v4.1-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// NewProgram compiles and links the two shader stages and uploads the
// screen quad. A rejected stage or a failed link is logged with the
// driver's diagnostics and returned, no unusable program is handed out.
// Requires a current GL context.
func NewProgram(vertexSource, fragmentSource string, cfg Configuration, logger log.FieldLogger) (*Program, error) {
	vertexShader, err := compileShader(vertexSource, core.VertexShaderType)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, core.FragmentShaderType)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(id)

		err := &LinkError{Log: strings.TrimRight(infoLog, "\x00")}
		logger.Error(err)
		return nil, err
	}

	p := &Program{
		id:     id,
		config: cfg,
		logger: logger,
	}
	p.uniforms = newUniformCache(func(name string) int32 {
		return gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}, logger)
	p.setupQuad()

	c := cfg.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())

	logger.WithFields(log.Fields{
		"program": p.id,
		"vao":     p.vao,
		"vbo":     p.vbo,
	}).Debug("shader program linked")
	return p, nil
}

// Program is a linked GL program together with the screen quad buffers
type Program struct {
	id       uint32
	vao      uint32
	vbo      uint32
	uniforms *uniformCache
	config   Configuration
	logger   log.FieldLogger
}

func compileShader(source string, shaderType core.ShaderType) (uint32, error) {
	var glType uint32
	switch shaderType {
	case core.VertexShaderType:
		glType = gl.VERTEX_SHADER
	case core.FragmentShaderType:
		glType = gl.FRAGMENT_SHADER
	default:
		return 0, &CompilationError{Stage: shaderType, Log: "unsupported shader stage"}
	}

	shader := gl.CreateShader(glType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, &CompilationError{
			Stage: shaderType,
			Log:   strings.TrimRight(infoLog, "\x00"),
		}
	}
	return shader, nil
}

// setupQuad uploads the screen quad, the vertex array stays bound
func (p *Program) setupQuad() {
	data := model.Flatten(model.ScreenQuad[:])

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, model.VertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
}

// Clear implements core.Program
func (p *Program) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Use implements core.Program
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// DrawQuad implements core.Program
func (p *Program) DrawQuad() {
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, model.QuadVertexCount)
}

// SetFloat implements core.Program
func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.uniforms.Location(name), value)
}

// SetInt sets an int uniform
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.uniforms.Location(name), value)
}

// SetVec2 implements core.Program
func (p *Program) SetVec2(name string, value glm.Vec2) {
	gl.Uniform2f(p.uniforms.Location(name), value.X(), value.Y())
}

// SetVec3 sets a vec3 uniform
func (p *Program) SetVec3(name string, value glm.Vec3) {
	gl.Uniform3f(p.uniforms.Location(name), value.X(), value.Y(), value.Z())
}

// SetVec4 sets a vec4 uniform
func (p *Program) SetVec4(name string, value glm.Vec4) {
	gl.Uniform4f(p.uniforms.Location(name), value.X(), value.Y(), value.Z(), value.W())
}

// Destroy releases the quad buffers and the program
func (p *Program) Destroy() {
	if p == nil {
		return
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	gl.DeleteProgram(p.id)
}
