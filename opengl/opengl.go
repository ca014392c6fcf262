//go:build !nogl
// +build !nogl

// Package opengl renders particle simulations in an OpenGL window.
package opengl

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	particlesim "github.com/dStern98/particle-simulator"
)

// A Sprite is the fixed appearance of one particle, keyed by particle id.
type Sprite struct {
	Radius float64    // radius of the filled circle
	Color  [4]float32 // RGBA fill color
}

// Config holds the parameters of the OpenGL driver.
type Config struct {
	MaxParticles int               // maximum particle set size
	Step         func()            // go to next step
	FrameDelay   time.Duration     // pause between steps
	Sprites      map[uint64]Sprite // sprite store, one per particle id
	ForcePause   bool              // step manually only?

	// bounds of default viewport
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

// Run runs an interactive simulation in an OpenGL window.
//
// Esc quits, Space pauses, Right arrow steps while paused and R resets
// the viewport. Scrolling zooms around the cursor.
func Run(s *particlesim.Simulation, conf *Config) error {
	// init GLFW and OpenGL
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	// create OpenGL window
	const (
		title  = "Particles Simulator"
		width  = 800
		height = 800
	)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return err
	}

	// set background color and enable alpha blending
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	w.SwapBuffers()

	// initialize OpenGL objects
	d, err := newDisplay(conf.MaxParticles, conf.Sprites)
	if err != nil {
		return err
	}

	// handle scrolling zoom
	vp := viewport{{float32(conf.Xmin), float32(conf.Ymin)}, {float32(conf.Xmax), float32(conf.Ymax)}}
	w.SetScrollCallback(func(w *glfw.Window, xo, yo float64) {
		xc, yc := w.GetCursorPos()
		xs, ys := w.GetSize()
		x, y := float32(xc)/float32(xs), (float32(ys)-float32(yc))/float32(ys)
		dx, dy := vp[1].X-vp[0].X, vp[1].Y-vp[0].Y
		z := 0.05 * float32(yo)
		vp[0].X += z * -(x * dx)
		vp[0].Y += z * -(y * dy)
		vp[1].X += z * (1 - x) * dx
		vp[1].Y += z * (1 - y) * dy
		d.draw(s, vp)
		w.SwapBuffers()
	})

	var quit, step bool
	pause := conf.ForcePause
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mod glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			quit = true
		}
		if key == glfw.KeySpace && action == glfw.Press && !conf.ForcePause {
			pause = !pause
		}
		if key == glfw.KeyRight && (action == glfw.Press || action == glfw.Repeat) {
			if pause {
				pause = false
				step = true
			}
		}
		if key == glfw.KeyR && action == glfw.Press {
			vp = viewport{{float32(conf.Xmin), float32(conf.Ymin)}, {float32(conf.Xmax), float32(conf.Ymax)}}
			d.draw(s, vp)
			w.SwapBuffers()
		}
	})

	for !(quit || w.ShouldClose()) {
		if step {
			pause = true
			step = false
			conf.Step()
		}
		if !pause {
			conf.Step()
		}
		d.draw(s, vp)
		w.SwapBuffers()
		glfw.PollEvents()
		if conf.FrameDelay > 0 {
			time.Sleep(conf.FrameDelay)
		}
	}
	return nil
}

// A viewport is a rectangle delimiting the area of simulation space shown on screen.
// The first point is the bottom left corner, the second point is the top right corner.
type viewport [2]struct{ X, Y float32 }

// A vertex is the per-particle data streamed to OpenGL each frame.
// Positions come from the simulation by value, radius and color from
// the sprite store.
type vertex struct {
	pos    [2]float32
	radius float32
	color  [4]float32
}

// display contains all the OpenGL objects required to display the simulation.
type display struct {
	vao     uint32 // vertex array object
	prog    uint32 // circle program
	buf     uint32 // vertex buffer
	vp      int32  // viewport uniform
	sprites map[uint64]Sprite
	scratch []vertex
}

// attribute locations are specified in the shaders with layout(location=n)
const (
	attrPos    = 0
	attrRadius = 1
	attrColor  = 2
)

// draw updates the OpenGL buffers and draws the particles on screen.
func (d *display) draw(s *particlesim.Simulation, vp viewport) {
	d.updateViewport(vp)
	d.updateParticles(s.Particles)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(d.prog)
	gl.DrawArrays(gl.POINTS, 0, int32(len(s.Particles)))
}

// updateViewport sends the new viewport to OpenGL.
func (d *display) updateViewport(vp viewport) {
	gl.UseProgram(d.prog)
	gl.Uniform2fv(d.vp, 2, &vp[0].X)
}

// updateParticles streams a snapshot of the particle set into the OpenGL
// buffer. The broad phase reorders the set between frames, so radius and
// color always come from the sprite store keyed by particle id.
func (d *display) updateParticles(p []particlesim.Particle) {
	d.scratch = d.scratch[:0]
	for _, v := range p {
		spr := d.sprites[v.ID]
		d.scratch = append(d.scratch, vertex{
			pos:    [2]float32{float32(v.Pos.X), float32(v.Pos.Y)},
			radius: float32(spr.Radius),
			color:  spr.Color,
		})
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf)
	const n = unsafe.Sizeof(vertex{})
	q := (uintptr)(gl.MapBuffer(gl.ARRAY_BUFFER, gl.WRITE_ONLY))
	if q != 0 {
		for i, v := range d.scratch {
			*(*vertex)(unsafe.Pointer(q + uintptr(i)*n)) = v
		}
		gl.UnmapBuffer(gl.ARRAY_BUFFER)
	}
}

// newDisplay compiles shaders and initializes a display.
func newDisplay(maxParticles int, sprites map[uint64]Sprite) (*display, error) {
	d := &display{
		sprites: sprites,
		scratch: make([]vertex, 0, maxParticles),
	}

	// compile and link shaders
	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", "circle.vert", gl.CreateShader(gl.VERTEX_SHADER)},
		{"Geometry", "circle.geom", gl.CreateShader(gl.GEOMETRY_SHADER)},
		{"Fragment", "circle.frag", gl.CreateShader(gl.FRAGMENT_SHADER)},
	})
	if err != nil {
		return nil, err
	}

	// uniform location cannot be specified in the shaders in OpenGL 3.3 core
	d.vp = gl.GetUniformLocation(d.prog, gl.Str("vp\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf)
	gl.BufferData(gl.ARRAY_BUFFER, maxParticles*int(unsafe.Sizeof(vertex{})), nil, gl.STREAM_DRAW)

	const n = int32(unsafe.Sizeof(vertex{}))

	gl.EnableVertexAttribArray(attrPos)
	gl.VertexAttribPointer(attrPos, 2, gl.FLOAT, false, n, unsafe.Pointer(unsafe.Offsetof(vertex{}.pos)))

	gl.EnableVertexAttribArray(attrRadius)
	gl.VertexAttribPointer(attrRadius, 1, gl.FLOAT, false, n, unsafe.Pointer(unsafe.Offsetof(vertex{}.radius)))

	gl.EnableVertexAttribArray(attrColor)
	gl.VertexAttribPointer(attrColor, 4, gl.FLOAT, false, n, unsafe.Pointer(unsafe.Offsetof(vertex{}.color)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

// A shader wraps an OpenGL shader.
type shader struct {
	name   string
	path   string
	shader uint32
}

// makeProg builds OpenGL programs.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	for _, s := range shaders {
		src := shaderSource[s.path] + "\x00"
		str, free := gl.Strs(src)
		gl.ShaderSource(s.shader, 1, str, nil)
		free()
		gl.CompileShader(s.shader)
		var status int32
		gl.GetShaderiv(s.shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(s.shader, gl.INFO_LOG_LENGTH, &n)
			log := make([]uint8, n)
			gl.GetShaderInfoLog(s.shader, n, &n, &log[0])
			fmt.Printf("### %s shader compilation error: %s ###\n\n%s\n\n", s.name, s.path, gl.GoStr(&log[0]))
			fail = true
			gl.DeleteShader(s.shader)
		}
	}
	if fail {
		return 0, fmt.Errorf("particlesim: GLSL errors")
	}
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s.shader)
	}
	gl.LinkProgram(prog)

	return prog, nil
}
