// Package gfxtest provides a recording gfx.Device for GPU-free tests.
package gfxtest

import (
	"fmt"
	"regexp"
	"strings"

	"spincube/internal/gfx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	attribPattern  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:in|attribute)\s+\w+\s+(\w+)\s*;`)
	uniformPattern = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

type shaderObject struct {
	stage  gfx.Stage
	source string
}

type programObject struct {
	attribs  map[string]int32
	uniforms map[string]int32
}

// MatrixUpload is one SetUniformMatrix call.
type MatrixUpload struct {
	Loc    int32
	Matrix rl.Matrix
}

// FloatUpload is one SetUniformFloat call.
type FloatUpload struct {
	Loc   int32
	Value float32
}

// Device records every call. Shader sources are "compiled" by checking for a
// main function; attribute and uniform locations are assigned in declaration
// order from the linked sources.
type Device struct {
	Width, Height int

	// FailLink makes every LinkProgram call fail with this log.
	FailLink string

	Compiles      []gfx.Stage
	Links         int
	Deleted       []uint32
	ActiveProgram uint32
	DepthTest     bool

	Vertices     []float32
	Indices      []uint16
	Attribs      map[int32]int32
	BoundArray   uint32
	Matrices     []MatrixUpload
	Floats       []FloatUpload
	Clears       int
	Draws        []int32
	FreedBuffers []uint32
	FreedArrays  []uint32

	nextID   uint32
	shaders  map[uint32]shaderObject
	programs map[uint32]programObject
}

// New returns a Device with a 400x400 surface.
func New() *Device {
	return &Device{
		Width:    400,
		Height:   400,
		Attribs:  make(map[int32]int32),
		shaders:  make(map[uint32]shaderObject),
		programs: make(map[uint32]programObject),
	}
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) CompileShader(stage gfx.Stage, source string) (uint32, string) {
	d.Compiles = append(d.Compiles, stage)
	if !strings.Contains(source, "void main") {
		return 0, fmt.Sprintf("0:1(1): error: %s shader has no main function", stage)
	}
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return 0, "0:1(1): error: syntax error, unexpected end of file"
	}
	id := d.id()
	d.shaders[id] = shaderObject{stage: stage, source: source}
	return id, ""
}

func (d *Device) LinkProgram(vs, fs uint32) (uint32, string) {
	d.Links++
	if d.FailLink != "" {
		return 0, d.FailLink
	}
	v, ok := d.shaders[vs]
	if !ok || v.stage != gfx.StageVertex {
		return 0, "error: no vertex shader attached"
	}
	f, ok := d.shaders[fs]
	if !ok || f.stage != gfx.StageFragment {
		return 0, "error: no fragment shader attached"
	}

	prog := programObject{
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
	}
	for _, m := range attribPattern.FindAllStringSubmatch(v.source, -1) {
		prog.attribs[m[1]] = int32(len(prog.attribs))
	}
	for _, src := range []string{v.source, f.source} {
		for _, m := range uniformPattern.FindAllStringSubmatch(src, -1) {
			if _, ok := prog.uniforms[m[1]]; !ok {
				prog.uniforms[m[1]] = int32(len(prog.uniforms))
			}
		}
	}

	id := d.id()
	d.programs[id] = prog
	return id, ""
}

func (d *Device) DeleteProgram(id uint32) {
	d.Deleted = append(d.Deleted, id)
	delete(d.programs, id)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	if loc, ok := d.programs[program].attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.programs[program].uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UseProgram(program uint32) {
	d.ActiveProgram = program
}

func (d *Device) LoadVertexArray() uint32 {
	d.BoundArray = d.id()
	return d.BoundArray
}

func (d *Device) LoadVertexBuffer(data []float32) uint32 {
	d.Vertices = append([]float32(nil), data...)
	return d.id()
}

func (d *Device) LoadIndexBuffer(data []uint16) uint32 {
	d.Indices = append([]uint16(nil), data...)
	return d.id()
}

func (d *Device) EnableAttrib(loc int32, components int32) {
	d.Attribs[loc] = components
	d.BoundArray = 0
}

func (d *Device) DeleteVertexArray(id uint32) {
	d.FreedArrays = append(d.FreedArrays, id)
}

func (d *Device) DeleteBuffer(id uint32) {
	d.FreedBuffers = append(d.FreedBuffers, id)
}

func (d *Device) SetUniformMatrix(loc int32, m rl.Matrix) {
	d.Matrices = append(d.Matrices, MatrixUpload{Loc: loc, Matrix: m})
}

func (d *Device) SetUniformFloat(loc int32, v float32) {
	d.Floats = append(d.Floats, FloatUpload{Loc: loc, Value: v})
}

func (d *Device) EnableDepthTest() {
	d.DepthTest = true
}

func (d *Device) Clear(color rl.Color) {
	d.Clears++
}

func (d *Device) DrawIndexed(vao uint32, count int32) {
	d.Draws = append(d.Draws, count)
}

func (d *Device) Size() (int, int) {
	return d.Width, d.Height
}

var _ gfx.Device = (*Device)(nil)
