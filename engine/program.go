package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter pushes named values into a shader program. The scene
// manager talks to the program only through this interface, so tests can
// record uniform writes without a GL context.
type UniformSetter interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
}

// Program wraps a compiled and linked GLSL program with a cache of
// uniform locations.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// NewProgram compiles the vertex and fragment sources and links them.
func NewProgram(vertex, fragment string) (*Program, error) {
	vs, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(log))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("link: %v", strings.TrimRight(log, "\x00"))
	}

	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Dispose() {
	gl.DeleteProgram(p.handle)
	p.locations = nil
}

// location resolves and caches a uniform location. Unknown names resolve
// to -1, which GL silently ignores on writes.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v.X(), v.Y())
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v.X(), v.Y(), v.Z(), v.W())
}

func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &v[0])
}
