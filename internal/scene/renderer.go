// Package scene draws the spinning cube: one-time geometry upload, then one
// indexed draw per frame with a freshly computed transform.
package scene

import (
	"fmt"
	"log"

	"spincube/internal/gfx"
	"spincube/internal/shader"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shader inputs the renderer binds by name.
const (
	AttribPosition = "position"
	UniformMatrix  = "uMatrix"
	UniformTime    = "uTime"
)

// Options configures a Renderer. The zero value is a fixed 0.01 rad/frame
// spin with the aspect ratio captured once at setup.
type Options struct {
	Stepper Stepper
	// TrackResize re-reads the surface size every frame instead of keeping
	// the aspect ratio measured at setup.
	TrackResize bool
	ClearColor  rl.Color
}

// FrameStats describes what one Frame uploaded.
type FrameStats struct {
	Frame    uint64
	Rotation float64
	Time     float32
	Aspect   float32
	Matrix   rl.Matrix
}

// Renderer owns the cube's GPU buffers and its animation state. It is not
// safe for concurrent use; drive it from the thread that owns the context.
type Renderer struct {
	dev     gfx.Device
	program *shader.Program
	mesh    Mesh

	vao, vbo, ebo uint32

	matrixLoc int32
	timeLoc   int32

	aspect      float32
	trackResize bool
	clearColor  rl.Color

	stepper  Stepper
	rotation float64
	running  bool
	frames   uint64
	closed   bool
}

// NewRenderer uploads the cube mesh and binds it to program. It fails if the
// program lacks the position attribute or either uniform.
func NewRenderer(dev gfx.Device, program *shader.Program, opts Options) (*Renderer, error) {
	mesh := CubeMesh()
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	program.Use()

	posLoc, err := program.Attrib(AttribPosition)
	if err != nil {
		return nil, fmt.Errorf("renderer setup: %w", err)
	}
	matrixLoc, err := program.Uniform(UniformMatrix)
	if err != nil {
		return nil, fmt.Errorf("renderer setup: %w", err)
	}
	timeLoc, err := program.Uniform(UniformTime)
	if err != nil {
		return nil, fmt.Errorf("renderer setup: %w", err)
	}

	r := &Renderer{
		dev:         dev,
		program:     program,
		mesh:        mesh,
		matrixLoc:   matrixLoc,
		timeLoc:     timeLoc,
		trackResize: opts.TrackResize,
		clearColor:  opts.ClearColor,
		stepper:     opts.Stepper,
		running:     true,
	}
	if r.stepper == nil {
		r.stepper = FixedStep(DefaultStep)
	}

	r.vao = dev.LoadVertexArray()
	r.vbo = dev.LoadVertexBuffer(mesh.Positions)
	r.ebo = dev.LoadIndexBuffer(mesh.Indices)
	dev.EnableAttrib(posLoc, 3)

	r.aspect = aspectOf(dev.Size())

	log.Printf("Renderer: cube uploaded (%d vertices, %d triangles, aspect %.3f)",
		mesh.VertexCount(), mesh.TriangleCount(), r.aspect)
	return r, nil
}

// Frame advances the animation and draws the cube once. After Close it
// does nothing and returns zero stats.
func (r *Renderer) Frame(timestampMs float64) FrameStats {
	if r.closed {
		return FrameStats{}
	}
	if r.running {
		r.rotation += r.stepper.Step(timestampMs)
	}
	if r.trackResize {
		r.aspect = aspectOf(r.dev.Size())
	}

	m := Transform(r.rotation, DefaultProjection(r.aspect))
	t := float32(timestampMs * 0.001)

	r.program.Use()
	r.dev.SetUniformMatrix(r.matrixLoc, m)
	r.dev.SetUniformFloat(r.timeLoc, t)

	r.dev.Clear(r.clearColor)
	r.dev.DrawIndexed(r.vao, int32(len(r.mesh.Indices)))

	r.frames++
	return FrameStats{
		Frame:    r.frames,
		Rotation: r.rotation,
		Time:     t,
		Aspect:   r.aspect,
		Matrix:   m,
	}
}

// CurrentTransform is the matrix the next Frame would upload if the cube did
// not turn.
func (r *Renderer) CurrentTransform() rl.Matrix {
	return Transform(r.rotation, DefaultProjection(r.aspect))
}

// Start resumes spinning. Timing history is dropped so a paused interval is
// not turned into one large step.
func (r *Renderer) Start() {
	if r.running {
		return
	}
	r.stepper.Reset()
	r.running = true
}

// Stop freezes the rotation. Frames keep drawing the current pose.
func (r *Renderer) Stop() {
	r.running = false
}

func (r *Renderer) Running() bool {
	return r.running
}

// Rotation returns the accumulated rotation in radians.
func (r *Renderer) Rotation() float64 {
	return r.rotation
}

func (r *Renderer) Frames() uint64 {
	return r.frames
}

// SetTrackResize switches between a fixed and a per-frame aspect ratio.
func (r *Renderer) SetTrackResize(track bool) {
	r.trackResize = track
}

func (r *Renderer) TrackResize() bool {
	return r.trackResize
}

// Close releases the mesh buffers. The program stays owned by the caller.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.dev.DeleteBuffer(r.vbo)
	r.dev.DeleteBuffer(r.ebo)
	r.dev.DeleteVertexArray(r.vao)
}
