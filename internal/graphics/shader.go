package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked OpenGL program with a cache of uniform locations
type Shader struct {
	ID uint32

	uniforms map[string]int32
}

// NewShader compiles and links the vertex and fragment shader files
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	return NewShaderFromSource(string(vertexSource), string(fragmentSource))
}

// NewShaderFromSource compiles and links a program from GLSL source
func NewShaderFromSource(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec3 sets a vector3 uniform
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v[0], v[1], v[2])
}

// SetMat4 sets a 4x4 matrix uniform
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
