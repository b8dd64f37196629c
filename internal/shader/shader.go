// Package shader compiles GLSL stages and links them into pipeline programs.
package shader

import (
	"fmt"
	"log"
	"strings"

	"spincube/internal/gfx"
)

// CompileError reports a stage the backend refused to compile.
type CompileError struct {
	Stage gfx.Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("compile %s shader: no diagnostic from backend", e.Stage)
	}
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program the backend refused to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "link program: no diagnostic from backend"
	}
	return "link program: " + e.Log
}

// MissingInputError reports an attribute or uniform the linked program does
// not expose. The shader text and the renderer disagree about names.
type MissingInputError struct {
	Kind string // "attribute" or "uniform"
	Name string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("program has no active %s %q", e.Kind, e.Name)
}

// Shader is a compiled stage.
type Shader struct {
	ID    uint32
	Stage gfx.Stage
}

// Compile compiles source as the given stage.
func Compile(dev gfx.Device, stage gfx.Stage, source string) (Shader, error) {
	if strings.TrimSpace(source) == "" {
		return Shader{}, &CompileError{Stage: stage, Log: "empty source"}
	}
	id, diag := dev.CompileShader(stage, source)
	if id == 0 {
		return Shader{}, &CompileError{Stage: stage, Log: strings.TrimSpace(diag)}
	}
	return Shader{ID: id, Stage: stage}, nil
}

// Link links a vertex and a fragment shader into a Program.
func Link(dev gfx.Device, vs, fs Shader) (*Program, error) {
	if vs.Stage != gfx.StageVertex {
		return nil, &LinkError{Log: fmt.Sprintf("first shader is a %s shader, want vertex", vs.Stage)}
	}
	if fs.Stage != gfx.StageFragment {
		return nil, &LinkError{Log: fmt.Sprintf("second shader is a %s shader, want fragment", fs.Stage)}
	}
	id, diag := dev.LinkProgram(vs.ID, fs.ID)
	if id == 0 {
		return nil, &LinkError{Log: strings.TrimSpace(diag)}
	}
	return &Program{
		ID:       id,
		dev:      dev,
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
	}, nil
}

// Build compiles both stages and links them.
//
// rlgl exposes no call to delete a single shader object, so the compiled
// stages stay with the driver until the context is destroyed, including a
// vertex shader orphaned by a failed fragment compile.
func Build(dev gfx.Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := Compile(dev, gfx.StageVertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := Compile(dev, gfx.StageFragment, fragmentSrc)
	if err != nil {
		return nil, err
	}
	prog, err := Link(dev, vs, fs)
	if err != nil {
		return nil, err
	}
	log.Printf("Shader: program %d linked (vs %d, fs %d)", prog.ID, vs.ID, fs.ID)
	return prog, nil
}

// Program is a linked pipeline program. Input locations are resolved once
// and cached by name.
type Program struct {
	ID       uint32
	dev      gfx.Device
	attribs  map[string]int32
	uniforms map[string]int32
}

// Attrib returns the location of a vertex attribute.
func (p *Program) Attrib(name string) (int32, error) {
	if loc, ok := p.attribs[name]; ok {
		return loc, nil
	}
	loc := p.dev.AttribLocation(p.ID, name)
	if loc < 0 {
		return -1, &MissingInputError{Kind: "attribute", Name: name}
	}
	p.attribs[name] = loc
	return loc, nil
}

// Uniform returns the location of a uniform.
func (p *Program) Uniform(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := p.dev.UniformLocation(p.ID, name)
	if loc < 0 {
		return -1, &MissingInputError{Kind: "uniform", Name: name}
	}
	p.uniforms[name] = loc
	return loc, nil
}

// Use makes the program current.
func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// Delete releases the program. The Program must not be used afterwards.
func (p *Program) Delete() {
	if p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
}
