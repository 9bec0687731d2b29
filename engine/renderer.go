package engine

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the GLFW window, the GL context and the scene's shader
// program. The caller must lock the main goroutine to the OS thread
// before constructing one.
type Renderer struct {
	window  *glfw.Window
	program *Program

	width, height int

	// static camera
	eye    mgl32.Vec3
	target mgl32.Vec3
}

func NewRenderer(title string, width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		eye:    mgl32.Vec3{0, 6, 16},
		target: mgl32.Vec3{0, 2, 0},
	}

	if err := r.initGLFW(title); err != nil {
		return nil, err
	}
	if err := r.initGL(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) initGLFW(title string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(r.width, r.height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}

	window.SetFramebufferSizeCallback(r.onResize)
	window.SetKeyCallback(r.onKey)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	r.window = window
	return nil
}

func (r *Renderer) initGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.ClearColor(0.1, 0.1, 0.1, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	program, err := NewProgram(VertexShaderSource, FragmentShaderSource)
	if err != nil {
		return err
	}
	// install right away: scene setup pushes light uniforms before the
	// first frame, and uniform writes require a current program
	program.Use()
	r.program = program

	w, h := r.window.GetFramebufferSize()
	r.onResize(r.window, w, h)
	return nil
}

func (r *Renderer) onResize(_ *glfw.Window, width, height int) {
	if width > 0 && height > 0 {
		r.width, r.height = width, height
	}
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// Program returns the compiled scene shader. The program is already
// current when NewRenderer returns, so setup code may push uniforms
// before the frame loop starts.
func (r *Renderer) Program() *Program {
	return r.program
}

// Run drives the frame loop until the window closes. Each frame clears
// the buffers, refreshes the camera uniforms and calls frame to issue
// the scene's draw calls.
func (r *Renderer) Run(frame func()) {
	for !r.window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		r.program.Use()
		r.program.SetMat4("view", mgl32.LookAtV(r.eye, r.target, mgl32.Vec3{0, 1, 0}))
		r.program.SetMat4("projection", mgl32.Perspective(
			mgl32.DegToRad(45), float32(r.width)/float32(r.height), 0.1, 100))
		r.program.SetVec3("viewPosition", r.eye)

		frame()

		r.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// Dispose releases the program and tears down the window.
func (r *Renderer) Dispose() {
	if r.program != nil {
		r.program.Dispose()
	}
	glfw.Terminate()
}
