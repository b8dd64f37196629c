// Package gfx is the boundary between the cube view and the immediate-mode
// GL layer underneath it. Everything above this package talks to a Device;
// the production Device drives raylib's rlgl functions.
package gfx

import rl "github.com/gen2brain/raylib-go/raylib"

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// Device is the set of GL calls the shader compiler and scene renderer need.
// Object ids of 0 and locations of -1 mean "none", as in GL itself.
type Device interface {
	// CompileShader compiles one stage. On failure it returns id 0 and the
	// backend's diagnostic text.
	CompileShader(stage Stage, source string) (id uint32, diag string)
	// LinkProgram links a vertex and a fragment shader. On failure it returns
	// id 0 and the link log.
	LinkProgram(vs, fs uint32) (id uint32, diag string)
	DeleteProgram(id uint32)

	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	UseProgram(program uint32)

	LoadVertexArray() uint32
	LoadVertexBuffer(data []float32) uint32
	LoadIndexBuffer(data []uint16) uint32
	// EnableAttrib points attribute loc at the bound vertex buffer as tightly
	// packed float components (stride 0, offset 0), then unbinds the vertex
	// array so later draws cannot modify it.
	EnableAttrib(loc int32, components int32)
	DeleteVertexArray(id uint32)
	DeleteBuffer(id uint32)

	SetUniformMatrix(loc int32, m rl.Matrix)
	SetUniformFloat(loc int32, v float32)

	EnableDepthTest()
	// Clear clears both the color and the depth buffer.
	Clear(color rl.Color)
	DrawIndexed(vao uint32, count int32)

	// Size reports the drawing surface size in pixels.
	Size() (width, height int)
}
