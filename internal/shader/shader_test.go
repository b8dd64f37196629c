package shader

import (
	"errors"
	"strings"
	"testing"

	"spincube/internal/assets"
	"spincube/internal/gfx"
	"spincube/internal/gfx/gfxtest"
)

func builtinSources(t *testing.T) (string, string) {
	t.Helper()
	vs, err := assets.Builtin(assets.DefaultVertexShader)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := assets.Builtin(assets.DefaultFragmentShader)
	if err != nil {
		t.Fatal(err)
	}
	return vs, fs
}

func TestBuildExposesCubeInputs(t *testing.T) {
	dev := gfxtest.New()
	vs, fs := builtinSources(t)

	prog, err := Build(dev, vs, fs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(dev.Compiles) != 2 || dev.Compiles[0] != gfx.StageVertex || dev.Compiles[1] != gfx.StageFragment {
		t.Errorf("Expected vertex then fragment compile, got %v", dev.Compiles)
	}
	if dev.Links != 1 {
		t.Errorf("Expected 1 link, got %d", dev.Links)
	}

	if loc, err := prog.Attrib("position"); err != nil || loc < 0 {
		t.Errorf("position: loc %d, err %v", loc, err)
	}
	for _, name := range []string{"uMatrix", "uTime"} {
		if loc, err := prog.Uniform(name); err != nil || loc < 0 {
			t.Errorf("%s: loc %d, err %v", name, loc, err)
		}
	}
}

func TestCompileInvalidVertexSource(t *testing.T) {
	dev := gfxtest.New()
	_, fs := builtinSources(t)

	prog, err := Build(dev, "#version 330\nin vec3 position;\n", fs)
	if prog != nil {
		t.Error("No program should be produced for an invalid vertex shader")
	}

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Expected *CompileError, got %T: %v", err, err)
	}
	if compileErr.Stage != gfx.StageVertex {
		t.Errorf("Expected vertex stage, got %s", compileErr.Stage)
	}
	if !strings.Contains(compileErr.Log, "main") {
		t.Errorf("Diagnostic log not carried: %q", compileErr.Log)
	}
	if dev.Links != 0 {
		t.Error("Link should not be attempted after a compile failure")
	}
}

func TestCompileEmptySource(t *testing.T) {
	dev := gfxtest.New()

	_, err := Compile(dev, gfx.StageFragment, "   \n")

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Expected *CompileError, got %v", err)
	}
	if len(dev.Compiles) != 0 {
		t.Error("Empty source should not reach the device")
	}
}

func TestLinkFailureCarriesLog(t *testing.T) {
	dev := gfxtest.New()
	dev.FailLink = "error: varying fragPosition not written by vertex shader\n"
	vs, fs := builtinSources(t)

	_, err := Build(dev, vs, fs)

	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("Expected *LinkError, got %T: %v", err, err)
	}
	if linkErr.Log != "error: varying fragPosition not written by vertex shader" {
		t.Errorf("Unexpected link log %q", linkErr.Log)
	}
}

func TestLinkRejectsSwappedStages(t *testing.T) {
	dev := gfxtest.New()
	vsSrc, fsSrc := builtinSources(t)

	vs, err := Compile(dev, gfx.StageVertex, vsSrc)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := Compile(dev, gfx.StageFragment, fsSrc)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Link(dev, fs, vs)
	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("Expected *LinkError, got %v", err)
	}
	if dev.Links != 0 {
		t.Error("Swapped stages should be rejected before reaching the device")
	}
}

func TestMissingUniformFailsFast(t *testing.T) {
	dev := gfxtest.New()
	vs, fs := builtinSources(t)
	prog, err := Build(dev, vs, fs)
	if err != nil {
		t.Fatal(err)
	}

	_, err = prog.Uniform("uMatirx")
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingInputError, got %v", err)
	}
	if missing.Kind != "uniform" || missing.Name != "uMatirx" {
		t.Errorf("Unexpected error fields: %+v", missing)
	}

	_, err = prog.Attrib("normal")
	if !errors.As(err, &missing) || missing.Kind != "attribute" {
		t.Errorf("Expected missing attribute error, got %v", err)
	}
}

func TestProgramDelete(t *testing.T) {
	dev := gfxtest.New()
	vs, fs := builtinSources(t)
	prog, err := Build(dev, vs, fs)
	if err != nil {
		t.Fatal(err)
	}
	id := prog.ID

	prog.Delete()
	prog.Delete() // second call is a no-op

	if len(dev.Deleted) != 1 || dev.Deleted[0] != id {
		t.Errorf("Expected program %d deleted once, got %v", id, dev.Deleted)
	}
}

func TestFragmentFailureSkipsLink(t *testing.T) {
	dev := gfxtest.New()
	vs, _ := builtinSources(t)

	prog, err := Build(dev, vs, "#version 330\nout vec4 finalColor;\n")
	if prog != nil {
		t.Error("No program should be produced for an invalid fragment shader")
	}

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Expected *CompileError, got %T: %v", err, err)
	}
	if compileErr.Stage != gfx.StageFragment {
		t.Errorf("Expected fragment stage, got %s", compileErr.Stage)
	}
	if len(dev.Compiles) != 2 {
		t.Errorf("Expected both stages compiled, got %v", dev.Compiles)
	}
	if dev.Links != 0 {
		t.Error("Link should not be attempted after a fragment compile failure")
	}
}
