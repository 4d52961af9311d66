package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/we/engine"
)

type shader struct {
	program  uint32
	uniforms map[string]int32
	disposed bool
}

func newShader() *shader {
	return &shader{uniforms: make(map[string]int32)}
}

// Compile builds a new program from code. On failure the previous program, if
// any, stays active.
func (s *shader) Compile(code engine.RawShaderCode) error {
	if s.disposed {
		return engine.ErrDisposed
	}

	vert, err := compileStage(code.Vert, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(code.Frag, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(program)
		gl.DeleteProgram(program)
		return fmt.Errorf("%w: link: %s", engine.ErrShaderCompile, log)
	}

	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
	s.program = program
	clear(s.uniforms)
	return nil
}

func compileStage(source string, stage uint32) (uint32, error) {
	id := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("%w: %s", engine.ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return id, nil
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (s *shader) Bind() {
	if s.program == 0 {
		return
	}
	gl.UseProgram(s.program)
}

func (s *shader) SetUniformMat4(name string, m mgl32.Mat4) {
	if s.program == 0 {
		return
	}
	gl.UniformMatrix4fv(s.uniformLocation(name), 1, false, &m[0])
}

func (s *shader) uniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *shader) Dispose() {
	if s.disposed {
		return
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
	s.program = 0
	s.disposed = true
}
